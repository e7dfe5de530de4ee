package ews

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Message is a mail item. Field order follows the schema's requirements for
// the Message element; EWS rejects payloads with out-of-order children.
type Message struct {
	XMLName xml.Name `xml:"t:Message"`

	ItemID  *ItemID `xml:"t:ItemId,omitempty"`
	Subject string  `xml:"t:Subject,omitempty"`
	Body    *Body   `xml:"t:Body,omitempty"`

	DateTimeReceived *Time `xml:"t:DateTimeReceived,omitempty"`
	DateTimeSent     *Time `xml:"t:DateTimeSent,omitempty"`

	Sender        *mailboxWrapper `xml:"t:Sender,omitempty"`
	ToRecipients  *mailboxList    `xml:"t:ToRecipients,omitempty"`
	CcRecipients  *mailboxList    `xml:"t:CcRecipients,omitempty"`
	BccRecipients *mailboxList    `xml:"t:BccRecipients,omitempty"`

	IsReadReceiptRequested     bool `xml:"t:IsReadReceiptRequested"`
	IsDeliveryReceiptRequested bool `xml:"t:IsDeliveryReceiptRequested"`

	ConversationIndex []byte `xml:"t:ConversationIndex,omitempty"`
	ConversationTopic string `xml:"t:ConversationTopic,omitempty"`

	// From on the wire; "From" alone collides with too many locals.
	Author *mailboxWrapper `xml:"t:From,omitempty"`

	InternetMessageID    string          `xml:"t:InternetMessageId,omitempty"`
	IsRead               bool            `xml:"t:IsRead"`
	IsResponseRequested  bool            `xml:"t:IsResponseRequested"`
	References           string          `xml:"t:References,omitempty"`
	ReplyTo              *mailboxList    `xml:"t:ReplyTo,omitempty"`
	ReceivedBy           *mailboxWrapper `xml:"t:ReceivedBy,omitempty"`
	ReceivedRepresenting *mailboxWrapper `xml:"t:ReceivedRepresenting,omitempty"`
}

// SetAuthor sets the From field.
func (m *Message) SetAuthor(mb Mailbox) { m.Author = &mailboxWrapper{Mailbox: &mb} }

// SetSender sets the Sender field.
func (m *Message) SetSender(mb Mailbox) { m.Sender = &mailboxWrapper{Mailbox: &mb} }

// SetToRecipients sets the To list.
func (m *Message) SetToRecipients(mbs ...Mailbox) { m.ToRecipients = &mailboxList{Mailboxes: mbs} }

// SetCcRecipients sets the Cc list.
func (m *Message) SetCcRecipients(mbs ...Mailbox) { m.CcRecipients = &mailboxList{Mailboxes: mbs} }

// SetBccRecipients sets the Bcc list.
func (m *Message) SetBccRecipients(mbs ...Mailbox) { m.BccRecipients = &mailboxList{Mailboxes: mbs} }

// Payload renders the message element for embedding in a request.
func (m *Message) Payload() ([]byte, error) {
	return xml.MarshalIndent(m, "", "  ")
}

// ReplyItem is the shared shape of ReplyToItem, ReplyAllToItem and
// ForwardItem: a reference to the original plus the new content.
type ReplyItem struct {
	XMLName xml.Name

	ReferenceItemID ItemID `xml:"t:ReferenceItemId"`
	Subject         string `xml:"t:Subject,omitempty"`
	NewBodyContent  string `xml:"t:NewBodyContent,omitempty"`

	ToRecipients  *mailboxList `xml:"t:ToRecipients,omitempty"`
	CcRecipients  *mailboxList `xml:"t:CcRecipients,omitempty"`
	BccRecipients *mailboxList `xml:"t:BccRecipients,omitempty"`
}

// Payload renders the reply element for embedding in a request.
func (r *ReplyItem) Payload() ([]byte, error) {
	return xml.MarshalIndent(r, "", "  ")
}

func (m *Message) requireID() (ItemID, error) {
	if m.ItemID == nil || m.ItemID.ID == "" {
		return ItemID{}, errors.New("message has no item ID; it must exist on the server first")
	}
	return *m.ItemID, nil
}

func (m *Message) authorMailbox() (Mailbox, bool) {
	if m.Author == nil || m.Author.Mailbox == nil {
		return Mailbox{}, false
	}
	return *m.Author.Mailbox, true
}

// NewReply builds a ReplyToItem for this message. When to is empty the reply
// goes to the original author; a message without an author then fails, the
// caller must name recipients explicitly.
func (m *Message) NewReply(subject, body string, to ...Mailbox) (*ReplyItem, error) {
	id, err := m.requireID()
	if err != nil {
		return nil, err
	}
	if len(to) == 0 {
		author, ok := m.authorMailbox()
		if !ok {
			return nil, fmt.Errorf("reply to %q: recipients must be given when the message has no author", m.Subject)
		}
		to = []Mailbox{author}
	}
	return &ReplyItem{
		XMLName:         xml.Name{Local: "t:ReplyToItem"},
		ReferenceItemID: id,
		Subject:         subject,
		NewBodyContent:  body,
		ToRecipients:    &mailboxList{Mailboxes: to},
	}, nil
}

// NewReplyAll builds a ReplyAllToItem addressed to the original To list plus
// the author, carrying over Cc and Bcc.
func (m *Message) NewReplyAll(subject, body string) (*ReplyItem, error) {
	id, err := m.requireID()
	if err != nil {
		return nil, err
	}
	var to []Mailbox
	if m.ToRecipients != nil {
		to = append(to, m.ToRecipients.Mailboxes...)
	}
	if author, ok := m.authorMailbox(); ok {
		to = append(to, author)
	}
	r := &ReplyItem{
		XMLName:         xml.Name{Local: "t:ReplyAllToItem"},
		ReferenceItemID: id,
		Subject:         subject,
		NewBodyContent:  body,
		ToRecipients:    &mailboxList{Mailboxes: to},
	}
	r.CcRecipients = m.CcRecipients
	r.BccRecipients = m.BccRecipients
	return r, nil
}

// NewForward builds a ForwardItem for this message.
func (m *Message) NewForward(subject, body string, to ...Mailbox) (*ReplyItem, error) {
	id, err := m.requireID()
	if err != nil {
		return nil, err
	}
	if len(to) == 0 {
		return nil, fmt.Errorf("forward of %q: at least one recipient is required", m.Subject)
	}
	return &ReplyItem{
		XMLName:         xml.Name{Local: "t:ForwardItem"},
		ReferenceItemID: id,
		Subject:         subject,
		NewBodyContent:  body,
		ToRecipients:    &mailboxList{Mailboxes: to},
	}, nil
}
