package models

import "time"

type MessageType string

const (
	MessageTypeText         MessageType = "text"
	MessageTypeOptions      MessageType = "options"
	MessageTypeProducts     MessageType = "products"
	MessageTypeOrders       MessageType = "orders"
	MessageTypeSizeChart    MessageType = "size_chart"
	MessageTypeAuthRequired MessageType = "auth_required"
	MessageTypeEmpty        MessageType = "empty"
	MessageTypeError        MessageType = "error"
)

// ConversationMessage is one entry in the assistant transcript. The
// transcript is append-only; messages are never mutated after creation.
type ConversationMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	IsUser    bool        `json:"isUser"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type,omitempty"`
	Options   []string    `json:"options,omitempty"`
	Products  []Product   `json:"products,omitempty"`
	Orders    []Order     `json:"orders,omitempty"`
	Chart     *SizeChart  `json:"chart,omitempty"`
}

// SizeChart is one of the four static size tables rendered by the size
// guide intent.
type SizeChart struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
