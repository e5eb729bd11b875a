// Package analysis derives reports from a personal bank operations export:
// per-category spending, free-text search, per-card spend and cashback, top
// transactions normalized to rubles, and a dashboard payload combining them
// with currency quotes and stock prices.
package analysis
