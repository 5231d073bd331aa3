package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	tokenizer "github.com/mutablelogic/go-openai/pkg/tokenizer"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RequestCommands struct {
	Request RequestCommand `cmd:"" name:"request" help:"Send a request to an endpoint and print the response." group:"REQUEST"`
	Chat    ChatCommand    `cmd:"" name:"chat" help:"Send a prompt to the chat completions endpoint." group:"REQUEST"`
	Tokens  TokensCommand  `cmd:"" name:"tokens" help:"Count the tokens in text." group:"REQUEST"`
}

type RequestCommand struct {
	Endpoint string `arg:"" help:"Endpoint, relative to the base endpoint (for example models)"`
	Method   string `name:"method" default:"GET" enum:"GET,POST,PUT,PATCH,DELETE" help:"HTTP method"`
	Data     string `name:"data" help:"JSON object to send as the request body"`
}

type ChatCommand struct {
	Prompt    []string `arg:"" help:"User prompt"`
	Model     string   `name:"model" default:"gpt-4o" help:"Model name"`
	MaxTokens string   `name:"max-tokens" default:"150" help:"Maximum number of tokens to generate"`
	System    string   `name:"system" help:"System prompt"`
	Estimate  bool     `name:"estimate" help:"Print the prompt token count without sending the request"`
}

type TokensCommand struct {
	Text []string `arg:"" help:"Text to count"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RequestCommand) Run(ctx *Globals) error {
	var body map[string]any
	if cmd.Data != "" {
		if err := json.Unmarshal([]byte(cmd.Data), &body); err != nil {
			return fmt.Errorf("invalid --data: %w", err)
		}
	}

	client, err := ctx.Client()
	if err != nil {
		return err
	}
	response, err := client.Request(ctx.ctx, strings.TrimPrefix(cmd.Endpoint, "/"), strings.ToUpper(cmd.Method), body)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(schema.Stringify(response))
	return nil
}

func (cmd *ChatCommand) Run(ctx *Globals) error {
	maxTokens, err := schema.ParseMaxTokens(cmd.MaxTokens)
	if err != nil {
		return err
	}

	// Build the conversation
	messages := []schema.Message{}
	if cmd.System != "" {
		messages = append(messages, schema.SystemPrompt(cmd.System))
	}
	messages = append(messages, schema.UserPrompt(strings.Join(cmd.Prompt, " ")))

	// Estimate only
	if cmd.Estimate {
		count, err := tokenizer.CountMessages(messages)
		if err != nil {
			return err
		}
		fmt.Println(count)
		return nil
	}

	client, err := ctx.Client()
	if err != nil {
		return err
	}
	response, err := client.Client().Chat(ctx.ctx, cmd.Model, messages, maxTokens)
	if err != nil {
		return err
	}

	// Print
	if ctx.Debug {
		fmt.Println(schema.Stringify(response))
	} else if message, ok := schema.ErrorMessage(response); ok {
		return errors.New(message)
	} else if content, ok := schema.Content(response); ok {
		fmt.Println(content)
	} else {
		fmt.Println(schema.Stringify(response))
	}
	return nil
}

func (cmd *TokensCommand) Run(ctx *Globals) error {
	count, err := tokenizer.Count(strings.Join(cmd.Text, " "))
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}
