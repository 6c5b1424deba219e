// vexdrift-server serves the game over SSH. Every connection gets its
// own isolated session with a per-user save slot. Build:
//
//	go build -o vexdrift-server ./cmd/server
//
// Usage:
//
//	./vexdrift-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"vexdrift/internal/game"
	internalssh "vexdrift/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	saveDir := flag.String("saves", "saves", "Directory for per-user save files")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, *saveDir)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; sessions are isolated per user.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("vexdrift SSH server listening on :%d", *port)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation, since
// concurrent connections may carry different terminal types.
var termMu sync.Mutex

// handleSession runs one full game session on the connecting terminal.
// It blocks for the duration of the connection.
func handleSession(s gossh.Session, saveDir string) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	game.NewSession(savePathFor(saveDir, s.User())).Run(screen)
}

// savePathFor maps an SSH user name to a save file, sanitized so a
// hostile user name cannot escape the save directory.
func savePathFor(dir, user string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, user)
	if clean == "" {
		clean = "player"
	}
	return filepath.Join(dir, clean+".dat")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates
// and persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "vexdrift server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
