// Package translation provides Chinese to English translation as a fallback
// for terms the bundled dictionary does not carry, using the OpenAI or
// Gemini APIs. It includes translation caching for batch operations and
// file persistence for translated words.
package translation
