// Package agent implements the interactive AI assistant of the `assist`
// subcommand. A single analyst chat is seeded with the current dashboard
// payload so it can answer questions about the user's spending.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const systemPrompt = `You are a personal finance analyst. The user's current
dashboard payload (card spending, top transactions, currency rates and stock
prices) is provided below as JSON. Answer the user's questions about it,
briefly and in the user's language. Amounts are in rubles unless stated
otherwise.`

// Analyst is a chat with the finance analyst.
type Analyst struct {
	ModelName string
	chat      *genai.Chat
}

// NewAnalyst creates the analyst chat, seeding it with the dashboard payload.
func NewAnalyst(ctx context.Context, client *genai.Client, dashboardJSON string) (*Analyst, error) {
	a := &Analyst{ModelName: "gemini-2.0-flash"}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemPrompt},
			{Text: dashboardJSON},
		}},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot start analyst chat: %w", err)
	}
	a.chat = chat
	return a, nil
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive session. Initial prompts are consumed before
// reading from r; 'bye' or EOF ends the session cleanly.
func (a *Analyst) Run(ctx context.Context, w io.Writer, r io.Reader, prompts ...string) error {
	fmt.Fprintln(w, "Welcome to the spending assistant. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
