package gamemaster

import (
	"fmt"
	"hive/engine"
	"hive/game"
	"hive/meta"
	"hive/player"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var _ GameMaster = (*localSession)(nil)

type Option func(s *localSession)

// WithDelay sets the pause before each machine action.
func WithDelay(delay time.Duration) Option {
	return func(s *localSession) {
		if delay >= 0 {
			s.delay = delay
		}
	}
}

// WithWinCallback registers fn to run once when a Queen is surrounded. fn
// runs inside the command that ended the game and must not call back into the
// session.
func WithWinCallback(fn game.WinCallback) Option {
	return func(s *localSession) {
		s.onWin = fn
	}
}

// localSession plays a human against a machine player on one live board.
// Every command runs to completion, machine reply included, before it
// returns.
type localSession struct {
	mu      sync.Mutex
	board   *game.Board
	human   game.Team
	machine player.Player
	delay   time.Duration
	onWin   game.WinCallback
	updates []Update
	started bool
}

func NewLocalSession(rules game.RuleSet, human game.Team, machine player.Player, options ...Option) *localSession {
	s := &localSession{
		human:   human,
		machine: machine,
		delay:   meta.MACHINE_DELAY,
	}
	for _, option := range options {
		option(s)
	}
	s.board = game.NewBoard(rules, func(winner game.Team) {
		log.Info().Msgf("%s wins", winner)
		if s.onWin != nil {
			s.onWin(winner)
		}
	})
	return s
}

// Start lets the machine open when it plays White.
func (s *localSession) Start() (UpdateGetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil, fmt.Errorf("session already started")
	}
	s.started = true
	log.Info().Msgf("human plays %s against %s", s.human, s.machine.Name())
	s.reply()

	return func() (Update, bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.updates) == 0 {
			return Update{}, false
		}
		u := s.updates[0]
		s.updates = s.updates[1:]
		return u, true
	}, nil
}

func (s *localSession) Place(kind game.Kind, to game.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTurn(); err != nil {
		return err
	}
	action := game.PlaceAction(kind, to)
	if !s.board.Apply(action) {
		return fmt.Errorf("%w: cannot place %s at %s", engine.ErrIllegalMove, kind, to)
	}
	s.played(action)
	return nil
}

func (s *localSession) Move(from, to game.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTurn(); err != nil {
		return err
	}
	top, ok := s.board.Top(from)
	if !ok || top.Team != s.human {
		return fmt.Errorf("%w: no piece of yours at %s", engine.ErrIllegalMove, from)
	}
	action := game.MoveAction(from, to)
	if !s.board.Apply(action) {
		return fmt.Errorf("%w: %s cannot move from %s to %s", engine.ErrIllegalMove, top.Kind, from, to)
	}
	s.played(action)
	return nil
}

// Pass is only accepted when the human has nothing to play.
func (s *localSession) Pass() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTurn(); err != nil {
		return err
	}
	if !s.board.Pass() {
		return fmt.Errorf("%w: passing while actions remain", engine.ErrIllegalMove)
	}
	s.passed(s.human)
	s.reply()
	return nil
}

func (s *localSession) LegalDestinations(from game.Coordinate) []game.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()

	top, ok := s.board.Top(from)
	if !ok {
		return nil
	}
	return s.board.LegalDestinations(top)
}

func (s *localSession) DeployableLocations() []game.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.DeployableLocations(s.human)
}

func (s *localSession) StackAt(c game.Coordinate) []game.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.StackAt(c)
}

func (s *localSession) Status() game.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.Status()
}

// Board returns a copy of the live board.
func (s *localSession) Board() *game.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.Clone()
}

func (s *localSession) checkTurn() error {
	if s.board.Status().Over() {
		return engine.ErrGameOver
	}
	if !s.started || s.board.ActiveTeam() != s.human {
		return engine.ErrNotYourTurn
	}
	return nil
}

func (s *localSession) played(action game.Action) {
	s.record(Update{Team: s.human, Action: action, Hash: s.board.Hash()})
	s.machine.Observe(action, s.board.Clone())
	s.reply()
}

func (s *localSession) passed(team game.Team) {
	s.record(Update{Team: team, Pass: true, Hash: s.board.Hash()})
	s.machine.Observe(game.Action{}, s.board.Clone())
}

// reply plays machine turns until the human is to act or the game ends.
func (s *localSession) reply() {
	for !s.board.Status().Over() && s.board.ActiveTeam() != s.human {
		time.Sleep(s.delay)

		action, _, ok := s.machine.Choose(s.board.Clone())
		if !ok {
			if !s.board.Pass() {
				panic(fmt.Sprintf("%s found no action but passing is not allowed", s.machine.Name()))
			}
			log.Debug().Msgf("%s passes", s.machine.Name())
			s.passed(s.human.Opponent())
			continue
		}
		if !s.board.Apply(action) {
			panic(fmt.Sprintf("%s chose rejected action %s", s.machine.Name(), action))
		}
		log.Debug().Msgf("%s plays %s", s.machine.Name(), action)
		s.record(Update{Team: s.human.Opponent(), Action: action, Hash: s.board.Hash()})
		s.machine.Observe(action, s.board.Clone())
	}
}

func (s *localSession) record(u Update) {
	s.updates = append(s.updates, u)
}
