package teacollection

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/reoring/teacollection/i18n"
	eng "github.com/reoring/teacollection/internal/engine"
	"github.com/reoring/teacollection/tree"
)

// ParseFrom decodes src and ingests the resulting document. Malformed input
// is reported as a single decode issue and nothing is traversed. On success
// the returned error is nil; otherwise it is Issues.
func ParseFrom(ctx context.Context, src Source, opts ...ParseOpt) (*Collection, error) {
	opt := resolveOpt(opts)
	v, err := Decode(src, opt)
	if err != nil {
		return nil, err
	}
	return Ingest(ctx, v, opt)
}

// Decode turns src into a value tree while enforcing the duplicate key,
// depth and size limits of opt. Errors are Issues.
func Decode(src Source, opts ...ParseOpt) (tree.Value, error) {
	if src == nil {
		return tree.Value{}, singleIssue(CodeParseError, i18n.T(i18n.MsgParseError, map[string]string{"cause": "nil source"}), nil)
	}
	opt := resolveOpt(opts)
	log := opt.Logger

	var m *meter
	var toks eng.TokenSource
	if opt.MaxBytes > 0 {
		// one byte past the cap is enough to tell the input is too large
		m = &meter{r: io.LimitReader(src.input(), opt.MaxBytes+1)}
		toks = meteredSource{TokenSource: src.tokens(m), m: m}
	} else {
		toks = src.tokens(src.input())
	}

	enforced := eng.WrapWithEnforcement(toks, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink: func(si eng.SimpleIssue) {
			if si.Code == eng.CodeDuplicateKey && opt.Strictness.OnDuplicateKey == Warn {
				log.Warn("duplicate key", zap.String("path", si.Path), zap.String("format", src.Format()))
			}
		},
	})
	v, err := eng.DecodeValue(enforced)
	oversized := m != nil && m.n > opt.MaxBytes
	if err != nil {
		iss := toIssues(err, opt)
		// a cut-off input usually fails to parse before the engine sees the count
		if oversized && iss[0].Code == CodeParseError {
			return tree.Value{}, truncatedIssue(opt.MaxBytes)
		}
		return tree.Value{}, iss
	}
	if oversized {
		return tree.Value{}, truncatedIssue(opt.MaxBytes)
	}
	return v, nil
}

// StreamParse reads a JSON document from r. MaxBytes is enforced while
// reading, so at most MaxBytes+1 bytes are consumed from r.
func StreamParse(ctx context.Context, r io.Reader, opts ...ParseOpt) (*Collection, error) {
	return ParseFrom(ctx, JSONReader(r), opts...)
}

// Unmarshal parses a JSON document held in data.
func Unmarshal(ctx context.Context, data []byte, opts ...ParseOpt) (*Collection, error) {
	return ParseFrom(ctx, JSONBytes(bytes.TrimSpace(data)), opts...)
}

func truncatedIssue(max int64) Issues {
	return singleIssue(CodeTruncated, "max bytes exceeded ("+strconv.FormatInt(max, 10)+")", nil)
}

func toIssues(err error, opt ParseOpt) Issues {
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		it := Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message, Cause: err}
		if ie.Code == eng.CodeTooDeep {
			it.Message = i18n.T(i18n.MsgTooDeep, map[string]string{"max": strconv.Itoa(opt.MaxDepth)})
		}
		return AppendIssues(nil, it)
	}
	return singleIssue(CodeParseError, i18n.T(i18n.MsgParseError, map[string]string{"cause": err.Error()}), err)
}

func singleIssue(code, msg string, cause error) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg, Cause: cause})
}
