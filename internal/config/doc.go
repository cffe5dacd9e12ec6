// Package config resolves the notifier's runtime configuration.
//
// Configuration is resolved once at startup with precedence
// defaults < optional TOML file < environment variables, so CI runs that
// only set TELEGRAM_BOT_TOKEN/TELEGRAM_CHAT_ID keep working while local
// runs can keep a notify.toml alongside the checkout.
package config
