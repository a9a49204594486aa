package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/accordion/internal/errors"
	"github.com/vango-dev/accordion/pkg/accordion"
	"github.com/vango-dev/accordion/pkg/telemetry"
)

// session is one browser connection. All group access, frame execution and
// writes happen on the run loop; a separate goroutine only reads.
type session struct {
	id     string
	srv    *Server
	conn   *websocket.Conn
	logger *slog.Logger

	host   *host
	group  *accordion.Group
	obs    *telemetry.GroupObserver
	state  snapshot
	reconf chan []accordion.Option
}

func (s *Server) newSession(conn *websocket.Conn) (*session, error) {
	sess := &session{
		id:     accordion.SequentialIDs("session").NextID(),
		srv:    s,
		conn:   conn,
		host:   newHost(s.config.InitialWidth, s.config.ReducedMotion),
		state:  make(snapshot),
		reconf: make(chan []accordion.Option, 1),
	}
	sess.logger = s.logger.With("session", sess.id)

	var obs accordion.Observer
	if s.config.Metrics != nil {
		sess.obs = s.config.Metrics.Observer()
		obs = sess.obs
	}

	_, group, err := s.bind(sess.host, obs)
	if err != nil {
		if sess.obs != nil {
			sess.obs.Release()
		}
		return nil, err
	}
	sess.group = group

	// The page was rendered from the same starting state.
	sess.state.diff(group)
	return sess, nil
}

func (sess *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer sess.close()

	sess.logger.Debug("session opened")

	msgs := make(chan []byte)
	go sess.readLoop(ctx, msgs)

	ticker := time.NewTicker(sess.srv.config.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case data, ok := <-msgs:
			if !ok {
				return
			}
			sess.handle(ctx, data)
			if err := sess.flush(); err != nil {
				return
			}

		case opts := <-sess.reconf:
			sess.group.Reconfigure(opts...)
			if err := sess.flush(); err != nil {
				return
			}

		case now := <-ticker.C:
			if sess.host.runFrames(now) == 0 {
				continue
			}
			if err := sess.flush(); err != nil {
				return
			}
		}
	}
}

// reconfigure queues opts for the run loop, replacing any update it has not
// picked up yet.
func (sess *session) reconfigure(opts []accordion.Option) {
	for {
		select {
		case sess.reconf <- opts:
			return
		default:
		}
		select {
		case <-sess.reconf:
		default:
		}
	}
}

func (sess *session) readLoop(ctx context.Context, out chan<- []byte) {
	defer close(out)
	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			return
		}
		select {
		case out <- data:
		case <-ctx.Done():
			return
		}
	}
}

func (sess *session) close() {
	sess.group.Release()
	if sess.obs != nil {
		sess.obs.Release()
	}
	sess.conn.Close()
	sess.logger.Debug("session closed")
}

// handle applies one client message to the group.
func (sess *session) handle(ctx context.Context, data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		sess.reject("", errors.New(errors.CodeLiveMessage).Wrap(err))
		return
	}

	kind := messageKind(msg.Type)
	_, span := sess.srv.config.Tracer.StartEvent(ctx, kind, sess.id)
	err := sess.apply(msg)
	telemetry.EndEvent(span, err)

	if err != nil {
		sess.reject(kind, errors.FromError(err, errors.CodeLiveMessage))
		return
	}
	if m := sess.srv.config.Metrics; m != nil {
		m.RecordMessage(kind, nil)
	}
}

func (sess *session) apply(msg ClientMessage) error {
	switch msg.Type {
	case MsgHello, MsgResize:
		sess.host.setHeights(msg.Heights)
		sess.setMotion(msg)
		sess.host.resize(msg.Width)

	case MsgHeights:
		sess.host.setHeights(msg.Heights)

	case MsgPrefs:
		if msg.ReducedMotion == nil {
			return errors.New(errors.CodeLiveMessage).WithDetail("prefs message without reduced_motion")
		}
		sess.setMotion(msg)

	case MsgClick:
		it, ok := sess.group.ItemByID(msg.Item)
		if !ok {
			return errors.New(errors.CodeLiveMessage).WithDetail(fmt.Sprintf("unknown item %q", msg.Item))
		}
		if it.Disabled() {
			// The control is inert while the breakpoints disable the group.
			sess.logger.Debug("click on disabled item ignored", "item", msg.Item)
			return nil
		}
		sess.group.Toggle(it)

	default:
		return errors.New(errors.CodeLiveMessage).WithDetail(fmt.Sprintf("unknown message type %q", msg.Type))
	}
	return nil
}

func (sess *session) setMotion(msg ClientMessage) {
	if msg.ReducedMotion == nil {
		return
	}
	at := time.Now()
	if msg.At > 0 {
		at = time.UnixMilli(msg.At)
	}
	sess.host.motion.SetFromRemote(*msg.ReducedMotion, at)
}

// reject reports a bad message to the log and the client.
func (sess *session) reject(kind string, e *errors.Error) {
	errors.Report(sess.logger, e)
	if m := sess.srv.config.Metrics; m != nil {
		if kind == "" {
			kind = "invalid"
		}
		m.RecordMessage(kind, e)
	}
	sess.send(ServerMessage{Type: MsgError, Code: e.Code, Error: e.Error()})
}

// flush sends the attribute changes since the last flush.
func (sess *session) flush() error {
	patches := sess.state.diff(sess.group)
	if len(patches) == 0 {
		return nil
	}
	return sess.send(ServerMessage{Type: MsgPatch, Patches: patches})
}

func (sess *session) send(msg ServerMessage) error {
	sess.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := sess.conn.WriteJSON(msg); err != nil {
		sess.logger.Debug("write failed", "error", err)
		return err
	}
	return nil
}
