package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	out    io.Writer
	reader *bufio.Reader
	// fd дескриптор ввода для чтения пароля без эха; -1 если ввод не терминал
	fd int
}

func NewStdio() IO {
	s := NewStdioWith(os.Stdin, os.Stdout).(*Stdio)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		s.fd = fd
	}
	return s
}

// NewStdioWith работает с произвольными потоками; пароль читается как обычная строка
func NewStdioWith(in io.Reader, out io.Writer) IO {
	return &Stdio{
		out:    out,
		reader: bufio.NewReader(in),
		fd:     -1,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	return s.readLine()
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	if s.fd < 0 {
		return s.readLine()
	}

	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func (s *Stdio) readLine() (string, error) {
	input, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
