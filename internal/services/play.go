package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/delbyte/codeolympics/internal/challenge"
	"github.com/delbyte/codeolympics/internal/models"
	"github.com/delbyte/codeolympics/internal/store"
	"github.com/delbyte/codeolympics/internal/ws"
)

// MaxDraws caps total challenge generations per participant, redraws included.
const MaxDraws = 3

const (
	PlayStateIdle     = "idle"
	PlayStateDrawing  = "drawing"
	PlayStateShowing  = "showing"
	PlayStateAccepted = "accepted"
	PlayStateDone     = "done"
)

var (
	ErrSessionNotFound = errors.New("play session not found")
	ErrNoDrawsLeft     = errors.New("no draws left, accept your challenge")
	ErrDrawInProgress  = errors.New("a draw is already in progress")
	ErrNothingToAccept = errors.New("no challenge to accept")
)

// Broadcaster pushes session events to connected clients.
type Broadcaster interface {
	Broadcast(token string, message ws.Message)
}

// Announcer posts a line to the community channel; best-effort.
type Announcer interface {
	Announce(content string) error
}

type playSession struct {
	token           string
	email           string
	discordUsername string
	state           string
	challenge       *models.Challenge
	draws           int
	createdAt       time.Time
}

// PlayService owns the per-session play state machine:
// idle → drawing → showing, showing → drawing (while draws < MaxDraws),
// showing → accepted → done. The draw delay and the accept countdown run
// server-side and report progress through the broadcaster.
type PlayService struct {
	mu       sync.Mutex
	sessions map[string]*playSession

	store     store.ParticipantStore
	gen       *challenge.Generator
	hub       Broadcaster
	notifier  Announcer
	inviteURL string

	drawDuration   time.Duration
	acceptDuration time.Duration
	tick           time.Duration
	sessionTTL     time.Duration
}

func NewPlayService(st store.ParticipantStore, gen *challenge.Generator, hub Broadcaster, notifier Announcer, inviteURL string) *PlayService {
	return &PlayService{
		sessions:       make(map[string]*playSession),
		store:          st,
		gen:            gen,
		hub:            hub,
		notifier:       notifier,
		inviteURL:      inviteURL,
		drawDuration:   3 * time.Second,
		acceptDuration: 5 * time.Second,
		tick:           100 * time.Millisecond,
		sessionTTL:     2 * time.Hour,
	}
}

// Open starts a session for a registered participant. Draws already spent are
// loaded from the store; a store failure opens a fresh session anyway.
func (s *PlayService) Open(email, discordUsername string) (*PlayState, error) {
	draws := 0
	if p, err := s.store.FindByEmail(email); err != nil {
		log.Printf("play: load participant %s: %v", email, err)
	} else if p != nil {
		draws = p.PlayCount
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()

	sess := &playSession{
		token:           token,
		email:           email,
		discordUsername: discordUsername,
		state:           PlayStateIdle,
		draws:           draws,
		createdAt:       time.Now(),
	}
	s.sessions[token] = sess
	return s.snapshotLocked(sess), nil
}

// Resume returns the most recent live session for the email, opening a new
// one when none exists. Backs the /challenge entry point reached by URL.
func (s *PlayService) Resume(email, discordUsername string) (*PlayState, error) {
	s.mu.Lock()
	var latest *playSession
	for _, sess := range s.sessions {
		if sess.email != email || sess.state == PlayStateDone {
			continue
		}
		if latest == nil || sess.createdAt.After(latest.createdAt) {
			latest = sess
		}
	}
	if latest != nil {
		state := s.snapshotLocked(latest)
		s.mu.Unlock()
		return state, nil
	}
	s.mu.Unlock()

	return s.Open(email, discordUsername)
}

func (s *PlayService) Get(token string) (*PlayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.snapshotLocked(sess), nil
}

// Draw spends one of the session's draws and starts the reveal delay. The
// play-count increment is best-effort: a store failure is logged, never
// surfaced.
func (s *PlayService) Draw(token string) (*PlayState, error) {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	switch sess.state {
	case PlayStateIdle, PlayStateShowing:
	case PlayStateDrawing:
		s.mu.Unlock()
		return nil, ErrDrawInProgress
	default:
		s.mu.Unlock()
		return nil, errors.New("challenge already accepted")
	}

	// The cap governs redraws. A session holding no challenge yet (a
	// returning participant who spent every draw without accepting) still
	// gets one reveal so accept stays reachable.
	if sess.state == PlayStateShowing && sess.draws >= MaxDraws {
		s.mu.Unlock()
		return nil, ErrNoDrawsLeft
	}

	sess.draws++
	sess.state = PlayStateDrawing
	sess.challenge = nil
	email := sess.email
	state := s.snapshotLocked(sess)
	s.mu.Unlock()

	if err := s.store.IncrementPlayCount(email); err != nil {
		log.Printf("play: increment play count for %s: %v", email, err)
	}

	go s.runDraw(token)
	return state, nil
}

// Accept persists the shown challenge and starts the redirect countdown.
// Calling it again after acceptance returns the current state unchanged.
func (s *PlayService) Accept(token string) (*PlayState, error) {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	switch sess.state {
	case PlayStateAccepted, PlayStateDone:
		state := s.snapshotLocked(sess)
		s.mu.Unlock()
		return state, nil
	case PlayStateShowing:
	default:
		s.mu.Unlock()
		return nil, ErrNothingToAccept
	}

	sess.state = PlayStateAccepted
	combo := sess.challenge.Combo()
	email := sess.email
	username := sess.discordUsername
	state := s.snapshotLocked(sess)
	s.mu.Unlock()

	if err := s.store.SaveAccepted(email, combo); err != nil {
		log.Printf("play: save accepted combo for %s: %v", email, err)
	}

	if s.notifier != nil {
		go func() {
			msg := fmt.Sprintf("%s accepted their challenge: %s | %s | %s",
				username, combo.Constraint, combo.Budget, combo.Domain)
			if err := s.notifier.Announce(msg); err != nil {
				log.Printf("play: announce accept for %s: %v", email, err)
			}
		}()
	}

	go s.runCountdown(token)
	return state, nil
}

func (s *PlayService) runDraw(token string) {
	start := time.Now()
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for now := range ticker.C {
		elapsed := now.Sub(start)
		if elapsed >= s.drawDuration {
			break
		}
		s.hub.Broadcast(token, ws.Message{
			Type: "draw_progress",
			Data: progressEvent{Progress: percent(elapsed, s.drawDuration)},
		})
	}

	drawn := s.gen.Generate()

	s.mu.Lock()
	sess, ok := s.sessions[token]
	if !ok || sess.state != PlayStateDrawing {
		s.mu.Unlock()
		return
	}
	sess.challenge = &drawn
	sess.state = PlayStateShowing
	state := s.snapshotLocked(sess)
	s.mu.Unlock()

	s.hub.Broadcast(token, ws.Message{Type: "challenge_revealed", Data: state})
}

func (s *PlayService) runCountdown(token string) {
	start := time.Now()
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for now := range ticker.C {
		elapsed := now.Sub(start)
		if elapsed >= s.acceptDuration {
			break
		}
		secondsLeft := int((s.acceptDuration-elapsed)/time.Second) + 1
		s.hub.Broadcast(token, ws.Message{
			Type: "accept_progress",
			Data: progressEvent{Progress: percent(elapsed, s.acceptDuration), SecondsLeft: secondsLeft},
		})
	}

	s.mu.Lock()
	sess, ok := s.sessions[token]
	fire := ok && sess.state == PlayStateAccepted
	if fire {
		sess.state = PlayStateDone
	}
	s.mu.Unlock()

	// The state check above makes the redirect fire exactly once.
	if fire {
		s.hub.Broadcast(token, ws.Message{
			Type: "redirect",
			Data: redirectEvent{URL: s.inviteURL},
		})
	}
}

// pruneLocked drops sessions the browser abandoned; runs whenever one opens.
func (s *PlayService) pruneLocked() {
	cutoff := time.Now().Add(-s.sessionTTL)
	for token, sess := range s.sessions {
		if sess.createdAt.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
}

func (s *PlayService) snapshotLocked(sess *playSession) *PlayState {
	remaining := MaxDraws - sess.draws
	if remaining < 0 {
		remaining = 0
	}

	state := &PlayState{
		Token:           sess.token,
		Email:           sess.email,
		DiscordUsername: sess.discordUsername,
		State:           sess.state,
		Challenge:       sess.challenge,
		Draws:           sess.draws,
		RemainingDraws:  remaining,
		CanRedraw:       sess.state == PlayStateShowing && sess.draws < MaxDraws,
	}
	if sess.state == PlayStateAccepted || sess.state == PlayStateDone {
		if sess.challenge != nil {
			combo := sess.challenge.Combo()
			state.AcceptedCombo = &combo
		}
		state.InviteURL = s.inviteURL
	}
	return state
}

func percent(elapsed, total time.Duration) float64 {
	p := float64(elapsed) / float64(total) * 100
	if p > 100 {
		p = 100
	}
	return p
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

type PlayState struct {
	Token           string                `json:"token"`
	Email           string                `json:"email"`
	DiscordUsername string                `json:"discord_username"`
	State           string                `json:"state"`
	Challenge       *models.Challenge     `json:"challenge,omitempty"`
	Draws           int                   `json:"draws"`
	RemainingDraws  int                   `json:"remaining_draws"`
	CanRedraw       bool                  `json:"can_redraw"`
	AcceptedCombo   *models.AcceptedCombo `json:"accepted_combo,omitempty"`
	InviteURL       string                `json:"invite_url,omitempty"`
}

type progressEvent struct {
	Progress    float64 `json:"progress"`
	SecondsLeft int     `json:"seconds_left,omitempty"`
}

type redirectEvent struct {
	URL string `json:"url"`
}
