package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/kalexmills/cellsheet/internal/liveserver"
	"github.com/kalexmills/cellsheet/internal/sheet"
)

func serveCommand(args []string) int {
	addr := ":8080"
	if len(args) == 1 {
		addr = args[0]
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: cellsh serve [addr]")
		return 2
	}

	srv := liveserver.New(sheet.New())
	http.HandleFunc("/ws", srv.HandleWebSocket)
	log.Printf("cellsh serving on %s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Printf("cellsh: %v", err)
		return 1
	}
	return 0
}
