package dungeon

import (
	"github.com/vovakirdan/tui-crawler/internal/events"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// Event topics published on the scene bus.
const (
	TopicDoorOpened           events.Topic = "door-opened"
	TopicEnemyHitPlayer       events.Topic = "enemy-hit-player"
	TopicPlayerCoinsChanged   events.Topic = "player-coins-changed"
	TopicPlayerHealthChanged  events.Topic = "player-health-changed"
	TopicPlayerHitDoor        events.Topic = "player-hit-door"
	TopicPlayerHitChest       events.Topic = "player-hit-chest"
	TopicWeaponHitEnemy       events.Topic = "weapon-hit-enemy"
	TopicWeaponHitPlayer      events.Topic = "weapon-hit-player"
	TopicWeaponHitWall        events.Topic = "weapon-hit-wall"
	TopicWizardFireballThrown events.Topic = "wizard-fireball-thrown"
	TopicEnemyDied            events.Topic = "enemy-died"
	TopicRoomEntered          events.Topic = "room-entered"
)

// DoorOpened asks the scene to open a door and its destination.
type DoorOpened struct {
	Door *Door
}

func (DoorOpened) Topic() events.Topic { return TopicDoorOpened }

// EnemyHitPlayer is published when an enemy body or a fireball touches the player.
type EnemyHitPlayer struct {
	Damage int
	From   physics.Vec // position of whatever hit the player
}

func (EnemyHitPlayer) Topic() events.Topic { return TopicEnemyHitPlayer }

// PlayerCoinsChanged carries the new coin total.
type PlayerCoinsChanged struct {
	Coins int
}

func (PlayerCoinsChanged) Topic() events.Topic { return TopicPlayerCoinsChanged }

// PlayerHealthChanged carries the new health in half hearts.
type PlayerHealthChanged struct {
	Health int
}

func (PlayerHealthChanged) Topic() events.Topic { return TopicPlayerHealthChanged }

// PlayerHitDoor is published when the player walks into a closed door.
type PlayerHitDoor struct {
	Door *Door
}

func (PlayerHitDoor) Topic() events.Topic { return TopicPlayerHitDoor }

// PlayerHitChest is published when the player walks into a chest.
type PlayerHitChest struct {
	Chest *Chest
}

func (PlayerHitChest) Topic() events.Topic { return TopicPlayerHitChest }

// WeaponHitEnemy is published when the knife reaches an enemy.
type WeaponHitEnemy struct {
	Knife  *Knife
	Enemy  *Enemy
	Damage int
}

func (WeaponHitEnemy) Topic() events.Topic { return TopicWeaponHitEnemy }

// WeaponHitPlayer is published when the knife comes back to the player.
type WeaponHitPlayer struct {
	Knife *Knife
}

func (WeaponHitPlayer) Topic() events.Topic { return TopicWeaponHitPlayer }

// WeaponHitWall is published when the knife bounces off a wall.
type WeaponHitWall struct {
	Knife   *Knife
	Contact physics.Contact
}

func (WeaponHitWall) Topic() events.Topic { return TopicWeaponHitWall }

// WizardFireballThrown is published when a wizard fires.
type WizardFireballThrown struct {
	Wizard   *Enemy
	Fireball *Fireball
}

func (WizardFireballThrown) Topic() events.Topic { return TopicWizardFireballThrown }

// EnemyDied is published once an enemy has faded out and left the scene.
type EnemyDied struct {
	Enemy *Enemy
}

func (EnemyDied) Topic() events.Topic { return TopicEnemyDied }

// RoomEntered is published when the camera starts moving to a new room.
type RoomEntered struct {
	Room string
}

func (RoomEntered) Topic() events.Topic { return TopicRoomEntered }
