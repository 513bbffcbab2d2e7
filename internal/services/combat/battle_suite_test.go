package combat_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
	"github.com/KirkDiggler/rpg-combat-core/internal/events"
	"github.com/KirkDiggler/rpg-combat-core/internal/services/combat"
	"github.com/KirkDiggler/rpg-combat-core/internal/testutils"
)

type BattleSuite struct {
	suite.Suite
	bus      *events.Bus
	svc      combat.Service
	recorder *recordingListener
}

func (s *BattleSuite) SetupTest() {
	logger, _ := test.NewNullLogger()

	s.bus = events.NewBus(logger)
	s.svc = combat.NewService(&combat.ServiceConfig{
		Publisher: s.bus,
		Logger:    logger,
	})

	s.recorder = &recordingListener{}
	for _, eventType := range []events.EventType{
		events.EventTypeDamageDealt,
		events.EventTypeAttackAbsorbed,
		events.EventTypeHealed,
		events.EventTypeEntityDefeated,
		events.EventTypeStatusChanged,
	} {
		s.bus.Subscribe(eventType, s.recorder)
	}
}

func (s *BattleSuite) TestGoblinAndSkeletonThenPotion() {
	player := testutils.NewPlayer(s.T())
	goblin := testutils.NewMonster(s.T(), "Goblin", 12)
	skeleton := testutils.NewMonster(s.T(), "Skeleton", 18)

	_, err := s.svc.Attack(goblin, player)
	s.Require().NoError(err)
	s.Equal(88, player.Health())

	_, err = s.svc.Attack(skeleton, player)
	s.Require().NoError(err)
	s.Equal(70, player.Health())

	restored := economy.SimplePotion.Drink(player)
	s.Equal(20, restored)
	s.Equal(90, player.Health())
	s.Equal(entity.TierHurt, player.StatusTier())

	s.Equal([]events.EventType{
		events.EventTypeDamageDealt,
		events.EventTypeDamageDealt,
	}, s.recorder.types())
}

func (s *BattleSuite) TestPlayerCannotPierceEnemyDefense() {
	player := testutils.NewPlayer(s.T())
	enemy := testutils.NewArmoredEnemy(s.T())

	result, err := s.svc.Attack(player, enemy)
	s.Require().NoError(err)

	s.True(result.Absorbed)
	s.Equal(0, result.Damage)
	s.Equal(100, enemy.Health())
	s.Equal([]events.EventType{events.EventTypeAttackAbsorbed}, s.recorder.types())
}

func (s *BattleSuite) TestFightToTheEnd() {
	player := testutils.NewPlayer(s.T())
	goblin := testutils.NewMonster(s.T(), "Goblin", 12)

	s.Require().NoError(s.svc.SetStatus(goblin, entity.StatusPoisoned, true))

	rounds := 0
	for goblin.IsAlive() {
		_, err := s.svc.Attack(player, goblin)
		s.Require().NoError(err)
		rounds++
		s.Require().Less(rounds, 100)
	}

	// Goblin starts at 50 HP and the player deals 10 per swing
	s.Equal(5, rounds)
	s.Equal(entity.TierDead, goblin.StatusTier())

	got := s.recorder.types()
	s.Equal(events.EventTypeStatusChanged, got[0])
	s.Equal(events.EventTypeEntityDefeated, got[len(got)-1])

	_, err := s.svc.Heal(goblin, 30)
	s.Require().NoError(err)
	s.Equal(30, goblin.Health())
	s.Equal(entity.TierWounded, goblin.StatusTier())
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleSuite))
}

// Each battle owns its entities, so battles can run side by side without locks
func TestIndependentBattlesInParallel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc := combat.NewService(&combat.ServiceConfig{
		Publisher: events.NewBus(logger),
		Logger:    logger,
	})

	const battles = 16
	survivors := make([]int, battles)

	var g errgroup.Group
	for i := 0; i < battles; i++ {
		i := i
		player := testutils.NewPlayer(t)
		monster := testutils.NewMonster(t, fmt.Sprintf("Goblin-%d", i), 10+i)

		g.Go(func() error {
			for swing := 0; swing < 3; swing++ {
				if _, err := svc.Attack(monster, player); err != nil {
					return err
				}
			}
			survivors[i] = player.Health()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i, health := range survivors {
		want := 100 - 3*(10+i)
		if want < 0 {
			want = 0
		}
		if health != want {
			t.Errorf("battle %d: health %d, want %d", i, health, want)
		}
	}
}

type recordingListener struct {
	mu   sync.Mutex
	seen []events.EventType
}

func (l *recordingListener) ID() string    { return "recorder" }
func (l *recordingListener) Priority() int { return events.PriorityAudit }
func (l *recordingListener) HandleEvent(e events.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen = append(l.seen, e.GetType())
	return nil
}

func (l *recordingListener) types() []events.EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]events.EventType(nil), l.seen...)
}
