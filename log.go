// Debug tracing of scanning and parsing.

package tinymark

import "github.com/charmbracelet/log"

func trace(l *log.Logger, msg string, keyvals ...interface{}) {
	if l == nil {
		return
	}
	l.Debug(msg, keyvals...)
}

func (s *Scanner) trace(msg string, keyvals ...interface{}) {
	trace(s.log, msg, append(keyvals, "line", s.line)...)
}

func (p *Parser) trace(msg string, keyvals ...interface{}) {
	trace(p.log, msg, append(keyvals, "token", p.current)...)
}
