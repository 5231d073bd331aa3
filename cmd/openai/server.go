package main

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"

	// Packages
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	article "github.com/mutablelogic/go-openai/pkg/article"
	httphandler "github.com/mutablelogic/go-openai/pkg/httphandler"
	version "github.com/mutablelogic/go-openai/pkg/version"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	Serve ServeCommand `cmd:"" name:"serve" help:"Run the settings and article server." group:"SERVER"`
}

type ServeCommand struct {
	Addr   string `name:"addr" env:"OPENAI_ADDR" default:"localhost:8084" help:"Server listen address"`
	Prefix string `name:"prefix" default:"/api/openai" help:"Path prefix for the handlers"`
	Origin string `name:"origin" default:"" help:"Cross-origin protection (CSRF) origin"`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCommand) Run(ctx *Globals) error {
	page, err := admin.New(ctx.store, ctx.Opts()...)
	if err != nil {
		return err
	}
	renderer := article.NewRenderer(ctx, ctx.Opts()...)

	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
			if path == "" {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read TLS file: %w", err)
			}
			pemData = append(pemData, data)
		}
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the HTTP router
	router, err := httprouter.NewRouter(ctx.ctx, cmd.Prefix, cmd.Origin, "OpenAI", version.Version())
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(router, page, renderer, true); err != nil {
		return err
	}

	// Create the server
	server, err := httpserver.New(cmd.Addr, router, tlsConfig)
	if err != nil {
		return err
	}

	// Run the server
	log.Printf("%s@%s started on %s", ctx.execName, version.Version(), cmd.Addr)
	if err := server.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	log.Printf("%s@%s stopped", ctx.execName, version.Version())
	return nil
}
