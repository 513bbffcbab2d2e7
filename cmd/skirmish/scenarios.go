package main

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-combat-core/internal/dice"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/economy"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/entity"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/progression"
	"github.com/KirkDiggler/rpg-combat-core/internal/domain/stats"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
	"github.com/KirkDiggler/rpg-combat-core/internal/services/combat"
)

type scenario struct {
	name  string
	title string
	play  func(a *app) error
}

var scenarios = []scenario{
	{name: "battle", title: "BATTLE START", play: playBattle},
	{name: "ambush", title: "AMBUSH", play: playAmbush},
	{name: "status", title: "Health Status", play: playStatus},
	{name: "clamp", title: "Clamp Health", play: playClamp},
	{name: "monster", title: "A Goblin Appears", play: playMonster},
	{name: "rolls", title: "Damage Rolls", play: playRolls},
	{name: "treasure", title: "Treasure & Shop", play: playTreasure},
	{name: "gate", title: "Gates of Asgard", play: playGate},
}

func selectScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 {
		return scenarios, nil
	}

	byName := make(map[string]scenario, len(scenarios))
	for _, sc := range scenarios {
		byName[sc.name] = sc
	}

	selected := make([]scenario, 0, len(names))
	for _, name := range names {
		sc, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, dnderr.NotFoundf("unknown scenario %q", name)
		}
		selected = append(selected, sc)
	}

	return selected, nil
}

func (a *app) spawnPlayer() (*entity.Entity, error) {
	return a.combat.Spawn(&combat.SpawnInput{
		Name:        "Player",
		Symbol:      '@',
		Health:      a.cfg.Player.MaxHealth,
		MaxHealth:   a.cfg.Player.MaxHealth,
		AttackPower: a.cfg.Player.AttackPower,
		Defense:     a.cfg.Player.Defense,
	})
}

func (a *app) printStats(e *entity.Entity) {
	fmt.Fprintf(a.out, "%s's Health: %d\n", e.Name, e.Health())
	fmt.Fprintf(a.out, "%s's Attack: %d\n", e.Name, e.AttackPower)
	fmt.Fprintf(a.out, "%s's Defense: %d\n", e.Name, e.Defense)
}

func playBattle(a *app) error {
	player, err := a.combat.Spawn(&combat.SpawnInput{
		Name: "Player", Symbol: '@', Health: 100, MaxHealth: 100, AttackPower: 10,
	})
	if err != nil {
		return err
	}
	enemy, err := a.combat.Spawn(&combat.SpawnInput{
		Name: "Enemy", Symbol: 'E', Health: 100, MaxHealth: 100, Defense: 11,
	})
	if err != nil {
		return err
	}

	a.printStats(player)
	a.printStats(enemy)
	fmt.Fprintln(a.out)

	if _, err := a.combat.Attack(player, enemy); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	a.printStats(enemy)
	return nil
}

func playAmbush(a *app) error {
	player, err := a.spawnPlayer()
	if err != nil {
		return err
	}
	goblin, err := a.combat.Spawn(&combat.SpawnInput{Name: "Goblin", Symbol: 'g', Health: 50, MaxHealth: 50, AttackPower: 12})
	if err != nil {
		return err
	}
	skeleton, err := a.combat.Spawn(&combat.SpawnInput{Name: "Skeleton", Symbol: 's', Health: 40, MaxHealth: 40, AttackPower: 18})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Player's Health: %d\n", player.Health())
	for _, attacker := range []*entity.Entity{goblin, skeleton} {
		if _, err := a.combat.Attack(attacker, player); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Player's Health: %d\n", player.Health())
	}

	fmt.Fprintf(a.out, "Player finds & drinks a %s\n", economy.SmallPotion.Name)
	if _, err := a.combat.Heal(player, economy.SmallPotion.HealAmount); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Player's Health: %d\n", player.Health())

	return nil
}

func playStatus(a *app) error {
	player, err := a.combat.Spawn(&combat.SpawnInput{Name: "Player", Symbol: '@', Health: 75, MaxHealth: 100})
	if err != nil {
		return err
	}
	if err := a.combat.SetStatus(player, entity.StatusPoisoned, true); err != nil {
		return err
	}

	tier := player.StatusTier()
	fmt.Fprintf(a.out, "Health: %d/%d\n", player.Health(), player.MaxHealth)
	fmt.Fprintf(a.out, "Status: %s\n", strings.ToUpper(string(tier)))
	fmt.Fprintln(a.out, tier.Advice())

	if player.HasStatus(entity.StatusPoisoned) {
		fmt.Fprintln(a.out, "WARNING: You are poisoned!")
	}

	percent, err := player.HealthPercent()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Health percentage: %d%%\n", percent)

	return nil
}

func playClamp(a *app) error {
	health, err := stats.NewRange(0, 100)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Health before clamp: %d\n", -10)
	fmt.Fprintf(a.out, "Health after clamp: %d\n", health.Clamp(-10))
	fmt.Fprintf(a.out, "Health above max health: %d\n", 110)
	fmt.Fprintf(a.out, "Health clamped to max health: %d\n", health.Clamp(110))

	return nil
}

func playMonster(a *app) error {
	goblin, err := a.combat.Spawn(&combat.SpawnInput{
		Name:        "Goblin",
		Symbol:      'g',
		Position:    &entity.Position{X: 5, Y: 10},
		Health:      50,
		MaxHealth:   100,
		AttackPower: 10,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "A goblin ('%c') appears!\n", goblin.Symbol)
	fmt.Fprintf(a.out, "It has %d HP and %d attack power.\n", goblin.Health(), goblin.AttackPower)
	fmt.Fprintf(a.out, "It is sitting at %s\n", goblin.Position)

	for i := 0; i < 2; i++ {
		if _, err := a.combat.Heal(goblin, 30); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Goblin now has %d HP.\n", goblin.Health())
	}

	return nil
}

func playRolls(a *app) error {
	result, err := dice.Tally([]int{8, 12, 5, 15, 9}, 0)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Sum of damage rolls %d\n", result.Total)
	fmt.Fprintf(a.out, "Highest %d, lowest %d (%s)\n", result.Highest, result.Lowest, result)
	return nil
}

func playTreasure(a *app) error {
	purse, err := economy.NewPurse(a.cfg.Economy.Currency, a.cfg.Economy.StartingGold)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Player's Gold: %d %s\n", purse.Gold, purse.Currency)
	for _, chest := range []economy.Chest{
		{Name: "Randuin's Treasure Chest", Bounty: 25},
		{Name: "Vaylorn's Treasure Chest", Bounty: 25},
		{Name: "Odin's Treasure Chest", Bounty: 25},
	} {
		purse.Loot(chest)
		fmt.Fprintf(a.out, "You found %s! and inside was %d %s pieces. What a find!\n", chest.Name, chest.Bounty, purse.Currency)
		fmt.Fprintf(a.out, "Player's Gold: %d %s\n", purse.Gold, purse.Currency)
	}

	fmt.Fprintln(a.out, "You head to the shop and see the following items for sale:")
	for i, item := range a.shop.Items() {
		fmt.Fprintf(a.out, "%d. %s for %d %s\n", i+1, item.Name, item.Price, purse.Currency)
	}

	fmt.Fprintln(a.out, "Potions for Sale:")
	for _, potion := range economy.Potions() {
		fmt.Fprintf(a.out, "%s: Heals %d, Costs %d %s.\n", potion.Name, potion.HealAmount, potion.Price, purse.Currency)
	}

	for _, item := range []economy.Item{economy.SimplePotion.Item, economy.SteelSword} {
		_, err := a.shop.Purchase(purse, item.Key)
		switch {
		case err == nil:
		case dnderr.IsInsufficientFunds(err):
			fmt.Fprintf(a.out, "You do not have enough money to buy the %s!\nYou are missing %v %s\n",
				item.Name, dnderr.GetMeta(err)["missing"], purse.Currency)
		default:
			return err
		}
		fmt.Fprintf(a.out, "Player's Gold: %d %s\n", purse.Gold, purse.Currency)
	}

	return nil
}

func playGate(a *app) error {
	gate := progression.Gate{Name: "Asgard", RequiredLevel: 10, RequiresKey: true}
	access := gate.Evaluate(9, false)

	switch access.Reason {
	case progression.ReasonGranted:
		fmt.Fprintf(a.out, "The gates to %s unlock.\nWelcome to %s.\n", gate.Name, gate.Name)
	case progression.ReasonMissingKey:
		fmt.Fprintln(a.out, "Hmm, you are the correct level. You are just missing the magic key!")
	case progression.ReasonMissingLevel:
		fmt.Fprintf(a.out, "You have the magic key. However, not the level. You need to be level %d.\n", gate.RequiredLevel)
		fmt.Fprintf(a.out, "So %d more %s for you.\n", access.LevelsMissing, progression.LevelWord(access.LevelsMissing))
	case progression.ReasonMissingLevelAndKey:
		fmt.Fprintf(a.out, "You lack the magic key and the right levels. You need to be level %d.\n", gate.RequiredLevel)
		fmt.Fprintf(a.out, "So %d more %s for you.\n", access.LevelsMissing, progression.LevelWord(access.LevelsMissing))
	}

	return nil
}
