// Package quirks holds per-device transaction policy overrides.
//
// Devices differ in how quickly they answer and how often they report busy;
// rather than subclassing the engine per vendor, deviations live in a policy
// table keyed by vendor and model ID. A Table is loaded from a YAML document
// and Lookup returns the effective policy for a device, falling back to the
// documented default for anything not listed. Fields an override leaves unset
// inherit from the default.
package quirks
