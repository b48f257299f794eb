package stream

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/hnimtadd/termwrap/logger"
	"github.com/hnimtadd/termwrap/terminal/core"
	"github.com/hnimtadd/termwrap/terminal/handler"
	"github.com/hnimtadd/termwrap/terminal/sequences/csi"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// MaxPending bounds how many bytes of an unterminated sequence are kept
// between two NextSlice calls. Anything longer is dropped.
const MaxPending = 64 * 1024

// This type can be used to process a stream of tty control characters.
// It calls callback functions on its handler. The handler only has to
// implement the callbacks it cares about; any unimplemented callbacks are
// logged at runtime.
//
// To figure out what callbacks are available, we try to cast the handler
// into the interfaces of the handler package.
type Stream struct {
	handler any
	parser  *ansi.Parser
	decoder *encoding.Decoder

	// Bytes of an incomplete UTF-8 codepoint or escape sequence left over
	// from the previous chunk.
	pending []byte

	logger logger.Logger
}

func NewStream(handler any, log logger.Logger) *Stream {
	return &Stream{
		handler: handler,
		parser:  ansi.NewParser(),
		decoder: unicode.UTF8.NewDecoder(),
		logger:  logger.OrDefault(log),
	}
}

// Reset drops any partially received sequence.
func (s *Stream) Reset() {
	s.pending = nil
	s.parser.Reset()
}

// NextSlice processes a chunk of output. Sequences and codepoints split
// across chunk boundaries are completed by the following call.
func (s *Stream) NextSlice(input []byte) {
	buf := make([]byte, 0, len(s.pending)+len(input))
	buf = append(buf, s.pending...)
	buf = append(buf, input...)
	s.pending = nil

	cut := completeUTF8(buf)
	rest := buf[cut:]

	// Ill-formed UTF-8 is replaced with U+FFFD so that the decoder below
	// only ever sees valid codepoints.
	data, err := s.decoder.Bytes(buf[:cut])
	if err != nil {
		s.logger.Warn("invalid utf-8 in stream", "err", err)
		data = buf[:cut]
	}

	for len(data) > 0 {
		seq, width, n, state := ansi.DecodeSequence(data, ansi.NormalState, s.parser)
		if state != ansi.NormalState {
			// Ran out of input in the middle of a sequence, wait for more.
			s.keep(data)
			break
		}
		if n == 0 {
			n = 1
		}
		s.dispatch(seq, width)
		data = data[n:]
	}
	s.keep(rest)
}

// Interject processes input as a complete chunk of its own. Bytes held back
// from an earlier NextSlice are set aside meanwhile and continue with the
// next NextSlice call. Anything input leaves unfinished is dropped.
func (s *Stream) Interject(input []byte) {
	pending := s.pending
	s.pending = nil
	s.NextSlice(input)
	if len(s.pending) > 0 {
		s.logger.Debug("dropping unfinished interjected input", "bytes", len(s.pending))
	}
	s.pending = pending
}

func (s *Stream) keep(b []byte) {
	if len(b) == 0 {
		return
	}
	if len(s.pending)+len(b) > MaxPending {
		s.logger.Warn("dropping oversized sequence", "bytes", len(s.pending)+len(b))
		s.pending = nil
		return
	}
	s.pending = append(s.pending, b...)
}

// completeUTF8 returns the length of the prefix of b that does not end in
// a truncated multi-byte codepoint.
func completeUTF8(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if b[i] >= utf8.RuneSelf && !utf8.FullRune(b[i:]) {
			return i
		}
		break
	}
	return len(b)
}

func (s *Stream) dispatch(seq []byte, width int) {
	switch {
	case width > 0:
		r, _ := utf8.DecodeRune(seq)
		s.print(uint32(r))
	case len(seq) == 1 && seq[0] != ansi.ESC:
		s.execute(seq[0])
	case ansi.HasCsiPrefix(seq):
		s.csiDispatch(ansi.Cmd(s.parser.Command()), s.parser.Params())
	case ansi.HasEscPrefix(seq) && !isStringSequence(seq):
		s.escDispatch(ansi.Cmd(s.parser.Command()))
	default:
		s.logger.Debug("ignoring sequence", "seq", fmt.Sprintf("%q", seq))
	}
}

func isStringSequence(seq []byte) bool {
	return ansi.HasOscPrefix(seq) || ansi.HasDcsPrefix(seq) ||
		ansi.HasApcPrefix(seq) || ansi.HasSosPrefix(seq) || ansi.HasPmPrefix(seq)
}

func (s *Stream) print(cp uint32) {
	if h, implemented := s.handler.(handler.PrintHandler); implemented {
		h.Print(cp)
		return
	}
	s.logger.Warn("unimplemented print", "codepoint", cp)
}

func (s *Stream) execute(c byte) {
	editor, implemented := s.handler.(handler.EditorHandler)
	if !implemented {
		s.logger.Warn("unimplemented execute", "code", c)
		return
	}
	switch c {
	case ansi.BS:
		editor.Backspace()
	case ansi.HT:
		editor.SetCursorTabRight(1)
	case ansi.LF, ansi.VT, ansi.FF:
		editor.LineFeed()
	case ansi.CR:
		editor.CarriageReturn()
	case ansi.NUL, ansi.BEL, ansi.DEL:
	default:
		s.logger.Debug("unimplemented execute", "code", c)
	}
}

func (s *Stream) escDispatch(cmd ansi.Cmd) {
	effector, implemented := s.handler.(handler.FormatEffectorHandler)
	if !implemented {
		s.logger.Warn("unimplemented esc dispatch", "final", string(cmd.Final()))
		return
	}
	if cmd.Intermediate() != 0 {
		s.logger.Debug("unimplemented esc dispatch",
			"intermediate", string(cmd.Intermediate()),
			"final", string(cmd.Final()))
		return
	}
	switch cmd.Final() {
	case 'D': // IND
		effector.Index()
	case 'E': // NEL
		effector.NextLine()
	case 'H': // HTS
		effector.TabSet()
	case 'M': // RI
		effector.ReverseIndex()
	case 'c': // RIS
		effector.FullReset()
	default:
		s.logger.Debug("unimplemented esc dispatch", "final", string(cmd.Final()))
	}
}

func (s *Stream) csiDispatch(cmd ansi.Cmd, params ansi.Params) {
	if cmd.Intermediate() != 0 {
		s.logger.Debug("unimplemented csi dispatch",
			"intermediate", string(cmd.Intermediate()),
			"final", string(cmd.Final()))
		return
	}

	switch cmd.Final() {
	case 'm':
		if cmd.Prefix() != 0 {
			break
		}
		if h, implemented := s.handler.(handler.SGRHandler); implemented {
			h.SetGraphicsRendition(params)
			return
		}
	case 'h', 'l':
		if h, implemented := s.handler.(handler.VT100Handler); implemented {
			s.setModes(h, cmd, params)
			return
		}
	default:
		if editor, implemented := s.handler.(handler.EditorHandler); implemented {
			if s.editorDispatch(editor, cmd, params) {
				return
			}
		}
		if effector, implemented := s.handler.(handler.FormatEffectorHandler); implemented {
			if cmd.Final() == 'g' && cmd.Prefix() == 0 {
				mode, _, _ := params.Param(0, 0)
				effector.TabClear(csi.TBCMode(mode))
				return
			}
		}
	}
	s.logger.Debug("unimplemented csi dispatch",
		"prefix", string(cmd.Prefix()),
		"final", string(cmd.Final()),
		"params", len(params))
}

func (s *Stream) setModes(h handler.VT100Handler, cmd ansi.Cmd, params ansi.Params) {
	enabled := cmd.Final() == 'h'
	ansiMode := cmd.Prefix() == 0
	if !ansiMode && cmd.Prefix() != '?' {
		return
	}
	params.ForEach(-1, func(_, value int, _ bool) {
		mode := core.ModeFromInt(value, ansiMode)
		if mode == nil {
			s.logger.Debug("unknown mode", "value", value, "ansi", ansiMode)
			return
		}
		h.SetMode(*mode, enabled)
	})
}

// editorDispatch handles cursor movement and erase sequences. It returns
// false for sequences it does not know.
func (s *Stream) editorDispatch(editor handler.EditorHandler, cmd ansi.Cmd, params ansi.Params) bool {
	if cmd.Prefix() != 0 {
		return false
	}
	count := func(i int) int {
		n, _, _ := params.Param(i, 1)
		return max(n, 1)
	}

	switch cmd.Final() {
	case 'A': // CUU
		editor.SetCursorUp(count(0), false)
	case 'B', 'e': // CUD, VPR
		editor.SetCursorDown(count(0), false)
	case 'C', 'a': // CUF, HPR
		editor.SetCursorRight(count(0))
	case 'D': // CUB
		editor.SetCursorLeft(count(0))
	case 'E': // CNL
		editor.SetCursorDown(count(0), true)
	case 'F': // CPL
		editor.SetCursorUp(count(0), true)
	case 'G', '`': // CHA, HPA
		editor.SetCursorCol(count(0))
	case 'd': // VPA
		editor.SetCursorRow(count(0))
	case 'H', 'f': // CUP, HVP
		editor.SetCursorPos(count(0), count(1))
	case 'I': // CHT
		editor.SetCursorTabRight(count(0))
	case 'Z': // CBT
		editor.SetCursorTabLeft(count(0))
	case 'J': // ED
		mode, _, _ := params.Param(0, 0)
		editor.EraseInDisplay(csi.EDMode(mode))
	case 'K': // EL
		mode, _, _ := params.Param(0, 0)
		editor.EraseInLine(csi.ELMode(mode))
	default:
		return false
	}
	return true
}
