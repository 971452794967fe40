// Command server runs the AgeWell HTTP API.
//
// Flags:
//
//	--env  print the environment variables the server reads and exit
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/agewell-backend/internal/app"
	"github.com/heartmarshall/agewell-backend/internal/config"
)

func main() {
	envFlag := flag.Bool("env", false, "print configuration environment variables and exit")
	flag.Parse()

	if *envFlag {
		desc, err := config.Describe()
		if err != nil {
			log.Fatalf("describe config: %v", err)
		}
		fmt.Println(desc)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
