// Package agent implements the interactive AI assistant of the `assist`
// command: a single portfolio analyst backed by Gemini, equipped with
// function tools that read the user's portfolio.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst represents a chat with the portfolio analyst.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	Library   Library
	chat      *genai.Chat
}

// NewAnalyst builds the analyst with its tools bound to the given library.
func NewAnalyst(lib []Function) *Analyst {
	return &Analyst{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a crypto portfolio analyst in charge of the user's portfolio.
			You know how to use the Tools to extract relevant information:
			  - the open positions with quantities, invested capital and average cost
			  - the portfolio summary with the current market value
			  - the market listing of the top assets and their prices

			The invested figures are net capital: sells subtract their proceeds, so a
			profitable exit shows less invested than was actually paid. Explain this
			to the user when the numbers surprise them.

			Answer in the user's language, keep the figures exactly as the tools
			report them, never invent a price.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Start creates the underlying Gemini chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to handle function calls.
func (a *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if a.Library == nil {
			return nil, fmt.Errorf("the analyst doesn't know how to make function calls")
		}

		// Make the callback. No possible error, it is reported via the response.
		fresp := a.Library(ctx, part0.FunctionCall)

		// Ask again with the response until we have a real answer.
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}
