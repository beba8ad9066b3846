// Package pagecursor builds "page cursors" for offset-based pagination.
//
// Overview
//
// Given a total record count, a page size, the current page and the number of
// page buttons a UI can render, Planner decides which pages deserve a link:
//   - First and Last: the edges of the collection, when they are not already
//     inside the visible window.
//   - Previous and Next: the neighbours of the current page.
//   - Around: a contiguous window of pages surrounding the current one.
//
// The full page list is never materialized. Each selected page is resolved
// through an injected PageFetcher, which attaches a caller-defined payload
// (a token, a query snapshot, a URL...) to the page.
//
// Key concepts
//   - Planner: the windowing algorithm. Use Plan for one-off calls.
//   - PageFetcher: the per-page payload capability.
//   - OffsetTokenFetcher: LIMIT/OFFSET tokens, no database round-trip.
//   - KeysetFetcher: keyset tokens resolved with GORM, so each page link can
//     be loaded without OFFSET.
//   - PageQuery: applies a page token, ordering and page size to a GORM query.
package pagecursor
