package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Voice     string // Voice variant (e.g., "cmn", "cmn+f1", "yue")
	Speed     int    // Speech speed in words per minute (default: 140)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)
	OutputDir string // Directory for output files
}

// DefaultConfig returns the default configuration for Mandarin voice
func DefaultConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Voice:     "cmn",
		Speed:     140,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
		OutputDir: "./",
	}
}

// espeakConfigFor derives an espeak configuration from the common provider
// configuration, selecting the voice from the locale.
func espeakConfigFor(config *Config) *ESpeakConfig {
	espeakConfig := DefaultConfig()
	if config == nil {
		return espeakConfig
	}
	if config.Locale == LocaleCantonese {
		espeakConfig.Voice = "yue"
	}
	if config.OutputDir != "" {
		espeakConfig.OutputDir = config.OutputDir
	}
	return espeakConfig
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// New creates a new ESpeak instance with the given configuration
func New(config *ESpeakConfig) (*ESpeak, error) {
	// Check if espeak-ng is installed
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultConfig()
	}

	return &ESpeak{config: config}, nil
}

// GenerateAudio generates a WAV file for the given Chinese text
func (e *ESpeak) GenerateAudio(text string, outputFile string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	// Ensure output directory exists
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := []string{
		"-v", e.config.Voice,
		"-s", fmt.Sprintf("%d", e.config.Speed),
		"-p", fmt.Sprintf("%d", e.config.Pitch),
		"-a", fmt.Sprintf("%d", e.config.Amplitude),
	}

	if e.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", e.config.WordGap))
	}

	args = append(args, "-w", outputFile, text)

	cmd := exec.Command("espeak-ng", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// SetVoice updates the voice variant
func (e *ESpeak) SetVoice(voice string) {
	e.config.Voice = voice
}

// SetSpeed updates the speech speed
func (e *ESpeak) SetSpeed(speed int) {
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	e.config.Speed = speed
}

// SetPitch updates the pitch (0-99, 50 is default)
func (e *ESpeak) SetPitch(pitch int) {
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}
	e.config.Pitch = pitch
}

// SetAmplitude updates the volume/amplitude (0-200, 100 is default)
func (e *ESpeak) SetAmplitude(amplitude int) {
	if amplitude < 0 {
		amplitude = 0
	} else if amplitude > 200 {
		amplitude = 200
	}
	e.config.Amplitude = amplitude
}

// SetWordGap updates the gap between words in 10ms units
func (e *ESpeak) SetWordGap(gap int) {
	if gap < 0 {
		gap = 0
	}
	e.config.WordGap = gap
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// ListVoices returns the available Chinese voice variants
func ListVoices() []string {
	return []string{
		"cmn",    // Mandarin
		"cmn+m1", // Mandarin male voice 1
		"cmn+m2", // Mandarin male voice 2
		"cmn+f1", // Mandarin female voice 1
		"cmn+f2", // Mandarin female voice 2
		"yue",    // Cantonese
		"yue+m1", // Cantonese male voice 1
		"yue+f1", // Cantonese female voice 1
	}
}

// ConvertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func ConvertWAVToMP3(wavFile, mp3File string) error {
	// Check if ffmpeg is installed
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}

	cmd := exec.Command("ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// GenerateMP3 generates an MP3 file for the given Chinese text
func (e *ESpeak) GenerateMP3(text string, outputFile string) error {
	// Generate temporary WAV file
	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"

	// Generate WAV
	if err := e.GenerateAudio(text, tempWAV); err != nil {
		return err
	}

	// Convert to MP3
	if err := ConvertWAVToMP3(tempWAV, outputFile); err != nil {
		// Clean up temporary file
		os.Remove(tempWAV)
		return err
	}

	// Clean up temporary file
	return os.Remove(tempWAV)
}
