// Package ews holds the wire-level item and service types exchanged with an
// EWS endpoint: payload construction and response decoding only. The HTTP
// transport, authentication and retry policy live with the caller.
package ews

import (
	"encoding/xml"

	"ewscal/ewstime"
)

// XML namespaces used by EWS payloads. Requests use the conventional t:/m:
// prefixes bound to these URIs in the SOAP envelope.
const (
	TypesNS    = "http://schemas.microsoft.com/exchange/services/2006/types"
	MessagesNS = "http://schemas.microsoft.com/exchange/services/2006/messages"
)

// Time wraps ewstime.DateTime for XML element content. Marshalling routes
// through the strict wire codec: a naive value fails to serialize instead of
// degrading to a guessed zone, and parsing rejects designator-less input.
type Time struct {
	ewstime.DateTime
}

// NewTime wraps a DateTime for wire use.
func NewTime(dt ewstime.DateTime) Time { return Time{dt} }

func (t Time) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	s, err := t.EWSFormat()
	if err != nil {
		return err
	}
	return e.EncodeElement(s, start)
}

func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	dt, err := ewstime.ParseDateTime(s)
	if err != nil {
		return err
	}
	t.DateTime = dt
	return nil
}

// ItemID identifies an item or folder on the server.
type ItemID struct {
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr,omitempty"`
}

// Mailbox is a mail-enabled directory object reference.
type Mailbox struct {
	Name         string `xml:"t:Name,omitempty"`
	EmailAddress string `xml:"t:EmailAddress,omitempty"`
	RoutingType  string `xml:"t:RoutingType,omitempty"`
}

// mailboxWrapper renders the single-mailbox container shape
// <t:Sender><t:Mailbox>...</t:Mailbox></t:Sender> used by several fields.
type mailboxWrapper struct {
	Mailbox *Mailbox `xml:"t:Mailbox,omitempty"`
}

// mailboxList renders the repeated-mailbox container shape used by
// recipient fields.
type mailboxList struct {
	Mailboxes []Mailbox `xml:"t:Mailbox"`
}

// Body is an item body with its markup type.
type Body struct {
	BodyType string `xml:"BodyType,attr"` // "Text" or "HTML"
	Content  string `xml:",chardata"`
}
