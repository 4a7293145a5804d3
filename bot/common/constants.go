package common

// ColorLive is the alert embed color, matching the notification role
const ColorLive = 0xFF1493

// MaxEmbedFieldValue is Discord's limit on an embed field value
const MaxEmbedFieldValue = 1024
