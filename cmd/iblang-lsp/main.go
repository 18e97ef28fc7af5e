// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"
	"iblang/internal/config"
	"iblang/internal/lsp"
)

const lsName = "iblang" // Name identifier for the language server

var version = "dev"

func main() {
	cfg, err := config.Discover("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "iblang-lsp:", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr or the configured file
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogPath())
	log := commonlog.GetLogger("iblang.lsp")

	handler := lsp.NewHandler(lsName, version)

	// debug=false keeps protocol payloads out of the log
	s := server.NewServer(handler.Protocol(), lsName, false)

	log.Infof("starting %s language server %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
