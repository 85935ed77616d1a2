// Package mread fetches web articles and saves them as clean, standalone
// documents for offline reading. It locates the article body inside pages
// cluttered with navigation, paywall teasers and structured-data duplicates,
// and renders the result with a fixed template.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package mread
