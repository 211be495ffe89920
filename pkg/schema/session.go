package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is a sequence of messages exchanged with an LLM
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the conversation
func (s *Conversation) Append(message Message) {
	*s = append(*s, &message)
}

// AppendWithOutput adds a response to the conversation. The input token
// count reported by the backend is attributed to the last message, less
// the tokens already counted by earlier messages.
func (s *Conversation) AppendWithOutput(message Message, input, output uint) {
	tokens := uint(0)
	for _, msg := range *s {
		tokens += msg.Tokens
	}
	if n := len(*s); n > 0 && input > tokens {
		(*s)[n-1].Tokens += input - tokens
	}

	message.Tokens = output
	*s = append(*s, &message)
}

// Tokens returns the total number of tokens in the conversation
func (s Conversation) Tokens() uint {
	total := uint(0)
	for _, msg := range s {
		total += msg.Tokens
	}
	return total
}

// Last returns the last message, or nil for an empty conversation
func (s Conversation) Last() *Message {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Conversation) String() string {
	return Stringify(s)
}
