package audio

import (
	"strings"
	"testing"
)

func TestValidateChineseText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid Chinese word",
			text:    "你好",
			wantErr: false,
		},
		{
			name:    "valid Chinese sentence",
			text:    "你好，今天怎么样？",
			wantErr: false,
		},
		{
			name:    "traditional characters",
			text:    "書",
			wantErr: false,
		},
		{
			name:    "mixed Latin and Chinese",
			text:    "A片",
			wantErr: false,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
			errMsg:  "text cannot be empty",
		},
		{
			name:    "whitespace only",
			text:    "   \t\n",
			wantErr: true,
			errMsg:  "text cannot be empty",
		},
		{
			name:    "English text",
			text:    "Hello world",
			wantErr: true,
			errMsg:  "text must contain Chinese characters",
		},
		{
			name:    "pinyin only",
			text:    "ni3 hao3",
			wantErr: true,
			errMsg:  "text must contain Chinese characters",
		},
		{
			name:    "numbers only",
			text:    "12345",
			wantErr: true,
			errMsg:  "text must contain Chinese characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChineseText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChineseText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateChineseText() error = %v, want error containing %v", err.Error(), tt.errMsg)
				}
			}
		})
	}
}
