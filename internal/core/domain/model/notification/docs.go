// Package notification turns a user's order status history into the
// messages shown in the notification dropdown.
//
// Nothing here is persisted. A View is derived from one order.HistoryEntry by
// looking its status up in the message catalog; the payment method only
// changes the wording for statuses where money is due or refunded.
//
//	history entries ──(after watermark, newest first)──▶ Project ──▶ []View
//
// Page holds the clamping rules for paginated reads and EffectiveWatermark
// combines the watermark a client remembers with the one stored server side.
package notification
