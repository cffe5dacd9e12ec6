// Package notifier provides notification interfaces and implementations for build artifacts.
//
// The notifier package delivers a finished artifact upload to its
// destination. Telegram is the only real destination; a dry-run
// implementation prints the payload for inspection without network access.
package notifier
