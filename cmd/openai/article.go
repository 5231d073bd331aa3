package main

import (
	"errors"
	"fmt"

	// Packages
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	article "github.com/mutablelogic/go-openai/pkg/article"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ArticleCommands struct {
	Article  ArticleCommand  `cmd:"" name:"article" help:"Render an article as HTML." group:"ARTICLE"`
	Validate ValidateCommand `cmd:"" name:"validate" help:"Check an API key with a small request." group:"ARTICLE"`
	Test     TestCommand     `cmd:"" name:"test" help:"Send a test request with the stored API key." group:"ARTICLE"`
}

type ArticleCommand struct {
	Shortcode string `name:"shortcode" help:"Shortcode text, for example [openai_article prompt=\"...\"]"`
	Prompt    string `name:"prompt" help:"Prompt, overriding the shortcode"`
	Model     string `name:"model" help:"Model name, overriding the shortcode"`
	MaxTokens string `name:"max-tokens" help:"Maximum number of tokens, overriding the shortcode"`
	Format    string `name:"format" help:"Output format (text, markdown)"`
}

type ValidateCommand struct {
	Key string `arg:"" optional:"" help:"API key to check, or the configured key when empty"`
}

type TestCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ArticleCommand) Run(ctx *Globals) error {
	attrs := article.Defaults()
	if cmd.Shortcode != "" {
		if v, err := article.ParseShortcode(cmd.Shortcode); err != nil {
			return err
		} else {
			attrs = v
		}
	}
	attrs, err := attrs.With(map[string]string{
		"prompt":     cmd.Prompt,
		"model":      cmd.Model,
		"max_tokens": cmd.MaxTokens,
		"format":     cmd.Format,
	})
	if err != nil {
		return err
	}

	// Print
	fmt.Println(article.NewRenderer(ctx, ctx.Opts()...).Render(ctx.ctx, attrs))
	return nil
}

func (cmd *ValidateCommand) Run(ctx *Globals) error {
	a, err := admin.New(ctx.store, ctx.Opts()...)
	if err != nil {
		return err
	}
	key := cmd.Key
	if key == "" {
		key = ctx.APIKey()
	}

	// Print
	validation := a.ValidateKey(ctx.ctx, key)
	if ctx.Debug {
		fmt.Println(schema.Stringify(validation))
	} else {
		fmt.Println(validation.Message)
	}
	if validation.Status != admin.StatusValid {
		return errors.New(string(validation.Status))
	}
	return nil
}

func (cmd *TestCommand) Run(ctx *Globals) error {
	a, err := admin.New(ctx.store, ctx.Opts()...)
	if err != nil {
		return err
	}
	content, err := a.TestRequest(ctx.ctx, a.Nonce())
	if err != nil {
		return err
	}

	// Print
	if content == "" {
		fmt.Println("No response received from OpenAI.")
	} else {
		fmt.Println(content)
	}
	return nil
}
