package nodes

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NodeID identifies a thought node. IDs are assigned at creation and never
// reused.
type NodeID uuid.UUID

var NilNode = NodeID(uuid.Nil)

func NewNodeID() NodeID {
	return NodeID(uuid.New())
}

func ParseNodeID(s string) (NodeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilNode, err
	}
	return NodeID(id), nil
}

func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

func (id NodeID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id NodeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uuid.UUID(id))
}

func (id *NodeID) UnmarshalJSON(data []byte) error {
	var u uuid.UUID
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	*id = NodeID(u)
	return nil
}
