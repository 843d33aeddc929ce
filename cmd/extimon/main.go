// extimon is a bench for the EXTI line API.  It drives a simulated EXTI
// block, so pending flags, software interrupts and edges can be tried out
// (and the pending-flag rules seen) without a board.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tty "github.com/mattn/go-tty"
)

var script = flag.Bool("script", false, "read commands from stdin instead of the terminal")
var device = flag.String("tty", "", "terminal device to use (default: the controlling terminal)")

const prompt = "exti> "

func main() {
	flag.Parse()
	log.SetFlags(0)
	b := newBench()
	if *script {
		if err := runScript(b, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	term, err := openTTY(*device)
	if err != nil {
		log.Fatalf("unable to open terminal: %v", err)
	}
	defer term.Close()
	out := term.Output()
	fmt.Fprintln(out, "EXTI bench, type help for commands")
	for {
		fmt.Fprint(out, prompt)
		line, err := term.ReadString()
		if err != nil {
			log.Printf("reading terminal: %v", err)
			return
		}
		result, err := b.execute(line)
		if err == errQuit {
			return
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

func openTTY(path string) (*tty.TTY, error) {
	if path == "" {
		return tty.Open()
	}
	return tty.OpenDevice(path)
}

// runScript runs one command per line of in.  It stops at the first error,
// reporting the line number.
func runScript(b *bench, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		result, err := b.execute(scanner.Text())
		if err == errQuit {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	return scanner.Err()
}
