// Package ecourts retrieves public court-case data from the Indian eCourts
// portal. It drives a real browser session in which a human operator solves
// the portal's CAPTCHA, then detects when results have rendered, extracts
// the result tables, normalizes them into case records, and persists each
// capture as a paired data/summary bundle on disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package ecourts
