// Package telegram provides Telegram Bot API integration for uploading build artifacts.
//
// The package sends a single multipart sendDocument request via simple
// HTTP. No external dependencies required - uses only the standard library.
//
// Authentication requires a bot token (from @BotFather) and chat ID.
package telegram
