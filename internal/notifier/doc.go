// Package notifier announces behind-the-wheel availability.
//
// Notifiers receive results sorted soonest first and post a short summary to
// Twitter or a Telegram chat. A dry-run notifier writes the message instead of
// posting it.
package notifier
