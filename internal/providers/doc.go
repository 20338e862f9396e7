// Package providers reports which audio and translation providers are
// usable with the current configuration. It backs the --list-providers
// flag so users can check their setup before processing a vocabulary list.
package providers
