/*
File   : cmd/safyr/main.go
Package: main

Entry point for the Safyr interpreter: REPL mode by default, file mode
when a path is given, plus --help/--version.
*/
package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/shepherdp/SAFyR-dev/interp"
	"github.com/shepherdp/SAFyR-dev/repl"
)

var (
	version = "v0.1.0"
	author  = "SAFyR contributors"
	license = "MIT"
	prompt  = "sfr >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
  ____        __       ____
 / ___|  __ _| |_   _ | _ \
 \___ \ / _` + "`" + ` | | | | ||   /
  ___) | (_| | | |_| || |\ \
 |____/ \__,_|_|\__, ||_| \_\
                |___/
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "serve":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for serve mode. Usage: safyr serve <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Safyr - a small dynamic scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  safyr                    Start interactive REPL mode")
	fmt.Println("  safyr <path-to-file>     Execute a Safyr file (.sfr)")
	fmt.Println("  safyr serve <port>       Start a REPL server on the given port")
	fmt.Println("  safyr --help             Display this help message")
	fmt.Println("  safyr --version          Display version information")
}

// startServer listens on port, handing each connection its own REPL
// session backed by an independent Interpreter.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("Safyr REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

func showVersion() {
	cyanColor.Printf("Safyr %s (%s license)\n", version, license)
}

// runFile reads and executes a Safyr source file, resolving `use`
// imports relative to the file's own directory.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}

	resolver := interp.FileResolver{Root: filepath.Dir(fileName)}
	it := interp.New(os.Stdout, os.Stdin, resolver)

	_, rerr := it.Run(string(content), fileName)
	if rerr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", rerr.Error())
		os.Exit(1)
	}
}
