package nodes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// roleWireAssistant is what existing data files use for the assistant role.
// We keep writing it so node files stay interchangeable with older tools.
const roleWireAssistant = "ai"

// ParseRole accepts both the canonical role names and the legacy "ai"
// spelling used on the wire.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAssistant), roleWireAssistant:
		return RoleAssistant, nil
	default:
		return "", errors.Errorf("unknown message role %q", s)
	}
}

// Message is a single entry in a node's conversation log. Messages are
// immutable once appended.
type Message struct {
	Role      Role      `json:"type"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(role Role, text string) Message {
	return Message{
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// View renders the message the way diffs and prompts expect it, one line
// per message.
func (m Message) View() string {
	return fmt.Sprintf("%s: %s", m.Role, m.Text)
}

type messageAlias struct {
	Role      string    `json:"type"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	role := string(m.Role)
	if m.Role == RoleAssistant {
		role = roleWireAssistant
	}
	return json.Marshal(messageAlias{
		Role:      role,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	})
}

type messageWire struct {
	Role      string   `json:"type"`
	Text      string   `json:"text"`
	Timestamp wireTime `json:"timestamp"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var mw messageWire
	if err := json.Unmarshal(data, &mw); err != nil {
		return err
	}
	role, err := ParseRole(mw.Role)
	if err != nil {
		return err
	}
	m.Role = role
	m.Text = mw.Text
	m.Timestamp = mw.Timestamp.Time
	return nil
}
