package format

import (
	"sync"

	"github.com/robomillo/sql-formatter/dialect"
	"github.com/robomillo/sql-formatter/tokenizer"
)

// Package-level conveniences bound to the standard dialect with default
// options, built on first use.
var (
	stdOnce sync.Once
	std     *Formatter
	stdErr  error
)

func stdFormatter() (*Formatter, error) {
	stdOnce.Do(func() {
		tok, err := tokenizer.New(dialect.Standard())
		if err != nil {
			stdErr = err
			return
		}
		std = New(tok, Options{})
	})
	return std, stdErr
}

// Format pretty-prints sql using the standard dialect.
func Format(sql string) (string, error) {
	f, err := stdFormatter()
	if err != nil {
		return "", err
	}
	return f.Format(sql)
}

// Highlight colorizes sql using the standard dialect.
func Highlight(sql string) (string, error) {
	f, err := stdFormatter()
	if err != nil {
		return "", err
	}
	return f.Highlight(sql)
}

// Compress renders sql on one line using the standard dialect.
func Compress(sql string) (string, error) {
	f, err := stdFormatter()
	if err != nil {
		return "", err
	}
	return f.Compress(sql)
}

// StripComments removes comments from sql using the standard dialect.
func StripComments(sql string) (string, error) {
	f, err := stdFormatter()
	if err != nil {
		return "", err
	}
	return f.StripComments(sql)
}

// Split cuts sql into statements using the standard dialect.
func Split(sql string) ([]string, error) {
	f, err := stdFormatter()
	if err != nil {
		return nil, err
	}
	return f.Split(sql)
}
