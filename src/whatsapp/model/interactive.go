package whatsapp_model

import (
	"errors"
	"fmt"
)

// WhatsApp limits for interactive messages.
const (
	MaxButtons              = 3
	MaxButtonTitleLength    = 20
	MaxListButtonTextLength = 20
	MaxSectionTitleLength   = 24
	MaxRowTitleLength       = 20
	MaxRowDescriptionLength = 72
	MaxSectionRows          = 10
)

// Option is one selectable choice offered to the user.
type Option struct {
	ID          string
	Title       string
	Description string
}

type Interactive struct {
	Type   string          `json:"type" validate:"required,oneof=button list"`
	Body   InteractiveBody `json:"body"`
	Action Action          `json:"action"`
}

type InteractiveBody struct {
	Text string `json:"text" validate:"required"`
}

type Action struct {
	Buttons  []Button  `json:"buttons,omitempty"`
	Button   string    `json:"button,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

type Button struct {
	Type  string      `json:"type"`
	Reply ButtonReply `json:"reply"`
}

type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Section struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

type Row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewButtonsMessage builds an interactive button message. WhatsApp allows
// at most three buttons; titles are truncated to the platform limit.
func NewButtonsMessage(to string, text string, options []Option) (OutboundMessage, error) {
	if len(options) == 0 {
		return OutboundMessage{}, errors.New("at least one button is required")
	}
	if len(options) > MaxButtons {
		return OutboundMessage{}, fmt.Errorf("WhatsApp allows at most %d buttons, got %d", MaxButtons, len(options))
	}

	buttons := make([]Button, 0, len(options))
	for _, opt := range options {
		if opt.ID == "" || opt.Title == "" {
			return OutboundMessage{}, errors.New("every button needs an id and a title")
		}
		buttons = append(buttons, Button{
			Type: "reply",
			Reply: ButtonReply{
				ID:    opt.ID,
				Title: truncate(opt.Title, MaxButtonTitleLength),
			},
		})
	}

	return OutboundMessage{
		MessagingProduct: MessagingProduct,
		To:               to,
		Type:             TypeInteractive,
		Interactive: &Interactive{
			Type:   "button",
			Body:   InteractiveBody{Text: text},
			Action: Action{Buttons: buttons},
		},
	}, nil
}

// NewListMessage builds an interactive list message with a single section.
func NewListMessage(to string, text string, buttonText string, sectionTitle string, options []Option) (OutboundMessage, error) {
	if len(options) == 0 {
		return OutboundMessage{}, errors.New("at least one option is required")
	}
	if len(options) > MaxSectionRows {
		return OutboundMessage{}, fmt.Errorf("WhatsApp allows at most %d rows per section, got %d", MaxSectionRows, len(options))
	}

	rows := make([]Row, 0, len(options))
	for _, opt := range options {
		if opt.ID == "" || opt.Title == "" {
			return OutboundMessage{}, errors.New("every option needs an id and a title")
		}
		rows = append(rows, Row{
			ID:          opt.ID,
			Title:       truncate(opt.Title, MaxRowTitleLength),
			Description: truncate(opt.Description, MaxRowDescriptionLength),
		})
	}

	return OutboundMessage{
		MessagingProduct: MessagingProduct,
		To:               to,
		Type:             TypeInteractive,
		Interactive: &Interactive{
			Type: "list",
			Body: InteractiveBody{Text: text},
			Action: Action{
				Button: truncate(buttonText, MaxListButtonTextLength),
				Sections: []Section{{
					Title: truncate(sectionTitle, MaxSectionTitleLength),
					Rows:  rows,
				}},
			},
		},
	}, nil
}

// NewInteractiveResponse picks buttons or a list depending on how many
// options there are. Up to three options fit on buttons, anything more
// becomes a list.
func NewInteractiveResponse(to string, text string, options []Option, buttonText string, sectionTitle string) (OutboundMessage, error) {
	if len(options) <= MaxButtons {
		return NewButtonsMessage(to, text, options)
	}
	return NewListMessage(to, text, buttonText, sectionTitle, options)
}

// truncate cuts s to max characters. WhatsApp's limits are character
// counts, so slicing happens on runes to keep accented text intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
