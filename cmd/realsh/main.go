package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:7878", "Server address")
	file := flag.String("f", "", "Send a query file instead of starting the prompt")
	flag.Parse()

	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "realsh: %v\n", err)
			os.Exit(1)
		}
		resp, err := sendQuery(*addr, flatten(string(data)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "realsh: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(resp)
		return
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Printf("realsh connected to %s, .quit to exit\n", *addr)

	for {
		input, err := line.Prompt("real> ")
		if err != nil { // Ctrl-C or EOF
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".quit" {
			return
		}
		line.AppendHistory(input)

		resp, err := sendQuery(*addr, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "realsh: %v\n", err)
			continue
		}
		fmt.Println(resp)
	}
}

// flatten joins a multi-line query file into the single line the wire
// protocol allows, dropping comments along the way
func flatten(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
