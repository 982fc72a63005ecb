package schema

// Messages is the ordered list of messages exchanged with the LLM.
// It owns typed append methods so callers never construct raw entries.
type Messages struct {
	Messages []Message
}

// NewMessages returns a Messages initialised with the given messages.
// Called with no arguments it returns an empty Messages ready for use.
func NewMessages(msgs ...Message) Messages {
	if len(msgs) == 0 {
		return Messages{Messages: make([]Message, 0)}
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return Messages{Messages: out}
}

// AddSystem installs the system message at position 0.
// A transcript carries at most one system message; re-adding replaces it.
func (mh *Messages) AddSystem(content string) {
	sys := NewSystemMessage(content)
	if len(mh.Messages) > 0 && mh.Messages[0].Role == RoleSystem {
		mh.Messages[0] = sys
		return
	}
	mh.Messages = append([]Message{sys}, mh.Messages...)
}

// AddUser appends a user message.
func (mh *Messages) AddUser(content string) {
	mh.Messages = append(mh.Messages, NewUserMessage(content))
}

// AddAssistant appends an assistant message.
func (mh *Messages) AddAssistant(content string) {
	mh.Messages = append(mh.Messages, NewAssistantMessage(content))
}

// RemoveAt deletes the message at index i. Out-of-range indexes are ignored.
func (mh *Messages) RemoveAt(i int) {
	if i < 0 || i >= len(mh.Messages) {
		return
	}
	mh.Messages = append(mh.Messages[:i], mh.Messages[i+1:]...)
}

// Len reports the number of messages.
func (mh *Messages) Len() int { return len(mh.Messages) }

// Clone returns a deep copy of mh with an independent backing slice.
func (mh *Messages) Clone() Messages {
	cloned := make([]Message, len(mh.Messages))
	copy(cloned, mh.Messages)
	return Messages{Messages: cloned}
}

// Window returns a copy limited to the system message (when present) plus
// the last n conversation messages. n <= 0 means no limit.
func (mh *Messages) Window(n int) Messages {
	if n <= 0 {
		return mh.Clone()
	}
	start := 0
	var head []Message
	if len(mh.Messages) > 0 && mh.Messages[0].Role == RoleSystem {
		head = mh.Messages[:1]
		start = 1
	}
	tail := mh.Messages[start:]
	if len(tail) > n {
		tail = tail[len(tail)-n:]
	}
	out := make([]Message, 0, len(head)+len(tail))
	out = append(out, head...)
	out = append(out, tail...)
	return Messages{Messages: out}
}
