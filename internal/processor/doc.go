// Package processor contains the core business logic for processing Chinese
// vocabulary terms. It orchestrates dictionary lookup, field derivation,
// translation, pronunciation audio fetching, and Anki file generation. This
// package serves as the main coordinator between all other components.
package processor
