package game_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"invaders/internal/assets"
	"invaders/internal/game"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T) (*game.Game, *manualClock) {
	t.Helper()
	clock := &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return game.NewGame(assets.Load(), game.WithClock(clock)), clock
}

// removeAliens marks every alien dead and fully expired so tests can place
// the ones they need.
func removeAliens(g *game.Game) {
	for i := range g.Aliens {
		g.Aliens[i].Type = game.AlienDead
		g.Aliens[i].DeathCounter = 0
	}
}

type fakeFrontend struct {
	presents   int
	err        error
	stopAfter  int
	lastPixels []uint32
}

func (f *fakeFrontend) Present(buf *game.Buffer) error {
	if f.err != nil {
		return f.err
	}
	f.presents++
	f.lastPixels = append(f.lastPixels[:0], buf.Pixels...)
	return nil
}

func (f *fakeFrontend) PollEvents(in *game.InputState) {
	if f.stopAfter > 0 && f.presents >= f.stopAfter {
		in.Running = false
	}
}

func TestNewGameLayout(t *testing.T) {
	g, _ := newTestGame(t)

	if len(g.Aliens) != game.AlienRows*game.AlienColumns {
		t.Fatalf("got %d aliens", len(g.Aliens))
	}
	tests := []struct {
		index int
		x, y  int
		typ   game.AlienType
	}{
		{0, 10, 128, game.AlienTypeC},
		{1, 64, 128, game.AlienTypeC},
		{2 * game.AlienColumns, 10, 162, game.AlienTypeC},
		{3 * game.AlienColumns, 11, 179, game.AlienTypeB},
		{5 * game.AlienColumns, 12, 213, game.AlienTypeA},
	}
	for _, tt := range tests {
		a := g.Aliens[tt.index]
		if a.X != tt.x || a.Y != tt.y || a.Type != tt.typ {
			t.Errorf("alien %d = (%d,%d,%s), want (%d,%d,%s)", tt.index, a.X, a.Y, a.Type, tt.x, tt.y, tt.typ)
		}
		if a.DeathCounter != game.DeathCounterStart {
			t.Errorf("alien %d death counter = %d", tt.index, a.DeathCounter)
		}
	}
	if g.Player != (game.Player{X: 295, Y: 32, Lives: 3}) {
		t.Errorf("player = %+v", g.Player)
	}
	if g.LiveAliens() != game.AlienCount {
		t.Errorf("LiveAliens = %d", g.LiveAliens())
	}
}

func TestFireSpawnsAtPlayerTopCentre(t *testing.T) {
	g, _ := newTestGame(t)
	in := game.NewInputState()
	in.FirePressed = true

	g.Step(in)

	if g.Bullets.Len() != 1 {
		t.Fatalf("bullets = %d, want 1", g.Bullets.Len())
	}
	if b := *g.Bullets.At(0); b != (game.Bullet{X: 300, Y: 39, Dir: game.BulletSpeed}) {
		t.Errorf("bullet = %+v", b)
	}
	if in.FirePressed {
		t.Error("fire edge not consumed")
	}
	if g.Stats.Shots != 1 {
		t.Errorf("shots = %d", g.Stats.Shots)
	}
}

func TestHeldFireSpawnsOnce(t *testing.T) {
	g, _ := newTestGame(t)
	in := game.NewInputState()

	in.Apply(game.ActionFire, true)
	for i := 0; i < 3; i++ {
		g.Step(in)
	}
	if g.Bullets.Len() != 0 {
		t.Fatalf("bullets = %d while fire held, want 0", g.Bullets.Len())
	}
	in.Apply(game.ActionFire, false)
	g.Step(in)
	g.Step(in)
	if g.Bullets.Len() != 1 {
		t.Errorf("bullets = %d after one release, want 1", g.Bullets.Len())
	}
}

func TestBulletPoolAtCapacity(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < game.MaxBullets; i++ {
		if !g.Bullets.Spawn(game.Bullet{X: 2, Y: 50}) {
			t.Fatalf("spawn %d refused", i)
		}
	}
	if g.Bullets.Spawn(game.Bullet{X: 2, Y: 50}) {
		t.Fatal("spawn accepted past capacity")
	}

	in := game.NewInputState()
	in.FirePressed = true
	g.Step(in)

	if g.Bullets.Len() != game.MaxBullets {
		t.Errorf("bullets = %d, want %d", g.Bullets.Len(), game.MaxBullets)
	}
	for i := 0; i < g.Bullets.Len(); i++ {
		if b := g.Bullets.At(i); b.X != 2 || b.Y != 50 {
			t.Fatalf("bullet %d overwritten: %+v", i, *b)
		}
	}
	if in.FirePressed {
		t.Error("fire edge not consumed")
	}
}

func TestBulletExpiry(t *testing.T) {
	tests := []struct {
		name string
		b    game.Bullet
		live bool
	}{
		{"leaves top", game.Bullet{X: 2, Y: game.BufferHeight - 2, Dir: 2}, false},
		{"last row", game.Bullet{X: 2, Y: game.BufferHeight - 3, Dir: 2}, true},
		{"below own height", game.Bullet{X: 2, Y: 4, Dir: -2}, false},
		{"at own height", game.Bullet{X: 2, Y: 5, Dir: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.Bullets.Spawn(tt.b)
			g.Step(game.NewInputState())
			if got := g.Bullets.Len() == 1; got != tt.live {
				t.Errorf("live = %v, want %v", got, tt.live)
			}
		})
	}
}

func TestExpiredBulletNeverHits(t *testing.T) {
	g, _ := newTestGame(t)
	removeAliens(g)
	// An alien sitting right past the top edge would overlap the moved bullet.
	g.Aliens[0] = game.Alien{X: 95, Y: game.BufferHeight - 4, Type: game.AlienTypeB, DeathCounter: game.DeathCounterStart}
	g.Bullets.Spawn(game.Bullet{X: 100, Y: game.BufferHeight - 1, Dir: 2})

	g.Step(game.NewInputState())

	if !g.Aliens[0].Alive() {
		t.Error("expired bullet killed an alien")
	}
	if g.Bullets.Len() != 0 {
		t.Errorf("bullets = %d", g.Bullets.Len())
	}
}

func TestBulletKillsAlien(t *testing.T) {
	g, _ := newTestGame(t)
	removeAliens(g)
	g.Aliens[20] = game.Alien{X: 100, Y: 50, Type: game.AlienTypeB, DeathCounter: game.DeathCounterStart}
	g.Bullets.Spawn(game.Bullet{X: 102, Y: 52, Dir: game.BulletSpeed})
	g.Bullets.Spawn(game.Bullet{X: 2, Y: 100, Dir: game.BulletSpeed})

	var killed []int
	g.Events.Subscribe(game.EventAlienKilled, func(e game.Event) { killed = append(killed, e.Data) })

	g.Step(game.NewInputState())

	a := g.Aliens[20]
	if a.Type != game.AlienDead {
		t.Fatalf("alien type = %s, want dead", a.Type)
	}
	if a.DeathCounter != game.DeathCounterStart {
		t.Errorf("death counter = %d, want %d", a.DeathCounter, game.DeathCounterStart)
	}
	// Death sprite is 13 wide, alive sprite 11: shift left by one.
	if a.X != 99 || a.Y != 50 {
		t.Errorf("alien at (%d,%d), want (99,50)", a.X, a.Y)
	}
	if g.Bullets.Len() != 1 {
		t.Errorf("bullets = %d, want 1", g.Bullets.Len())
	}
	if len(killed) != 1 || killed[0] != 20 {
		t.Errorf("kill events = %v", killed)
	}
	if g.Stats.Kills != 1 {
		t.Errorf("kills = %d", g.Stats.Kills)
	}
}

func TestFirstAlienInStorageOrderAbsorbsHit(t *testing.T) {
	g, _ := newTestGame(t)
	removeAliens(g)
	for _, i := range []int{7, 3} {
		g.Aliens[i] = game.Alien{X: 100, Y: 50, Type: game.AlienTypeB, DeathCounter: game.DeathCounterStart}
	}
	g.Bullets.Spawn(game.Bullet{X: 102, Y: 52, Dir: game.BulletSpeed})

	g.Step(game.NewInputState())

	if g.Aliens[3].Alive() {
		t.Error("alien 3 survived")
	}
	if !g.Aliens[7].Alive() {
		t.Error("one bullet killed two aliens")
	}

	g.Bullets.Spawn(game.Bullet{X: 102, Y: 52, Dir: game.BulletSpeed})
	g.Step(game.NewInputState())
	if g.Aliens[7].Alive() {
		t.Error("second bullet passed through alien 7")
	}
}

func TestDeadAliensAreNotTargets(t *testing.T) {
	g, _ := newTestGame(t)
	removeAliens(g)
	// Still visible, but dead.
	g.Aliens[0] = game.Alien{X: 100, Y: 50, Type: game.AlienDead, DeathCounter: 5}
	g.Bullets.Spawn(game.Bullet{X: 102, Y: 52, Dir: game.BulletSpeed})

	g.Step(game.NewInputState())

	if g.Bullets.Len() != 1 {
		t.Errorf("bullet absorbed by a dead alien")
	}
	if g.Aliens[0].X != 100 {
		t.Errorf("dead alien moved to x=%d", g.Aliens[0].X)
	}
}

func TestDeathCounterCountsDown(t *testing.T) {
	g, _ := newTestGame(t)
	removeAliens(g)
	g.Aliens[4] = game.Alien{X: 100, Y: 50, Type: game.AlienDead, DeathCounter: 3}

	removed := 0
	g.Events.Subscribe(game.EventAlienRemoved, func(game.Event) { removed++ })

	in := game.NewInputState()
	for _, want := range []int{2, 1, 0, 0, 0} {
		g.Step(in)
		if got := g.Aliens[4].DeathCounter; got != want {
			t.Fatalf("death counter = %d, want %d", got, want)
		}
		if g.Aliens[4].Type != game.AlienDead {
			t.Fatal("dead alien came back")
		}
	}
	if removed != 1 {
		t.Errorf("removed events = %d, want 1", removed)
	}
	if g.Aliens[4].Visible() {
		t.Error("expired alien still visible")
	}
}

func TestExpiredAlienNotRendered(t *testing.T) {
	g, _ := newTestGame(t)
	removeAliens(g)
	g.Aliens[0] = game.Alien{X: 100, Y: 50, Type: game.AlienDead, DeathCounter: 1}
	buf := game.NewBuffer(g.Width, g.Height)
	bg := game.Palette.Background.Pack()

	region := func() int {
		n := 0
		for y := 50; y < 58; y++ {
			for x := 100; x < 113; x++ {
				if buf.At(x, y) != bg {
					n++
				}
			}
		}
		return n
	}

	buf.Clear(bg)
	g.Render(buf)
	if region() == 0 {
		t.Fatal("dying alien not drawn")
	}

	g.Step(game.NewInputState())
	buf.Clear(bg)
	g.Render(buf)
	if n := region(); n != 0 {
		t.Errorf("expired alien drew %d pixels", n)
	}
}

func TestRenderPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	buf := game.NewBuffer(g.Width, g.Height)
	bg := game.Palette.Background.Pack()
	buf.Clear(bg)
	g.Render(buf)

	// Top row of the player art is ".....@....." at buffer row y+h-1.
	if buf.At(300, 38) != game.Palette.Player.Pack() {
		t.Errorf("player tip not drawn")
	}
	if buf.At(295, 38) != bg {
		t.Errorf("player mask not respected")
	}
	if buf.At(295, 32) != game.Palette.Player.Pack() {
		t.Errorf("player base not drawn")
	}
}

func TestPlayerClamp(t *testing.T) {
	g, _ := newTestGame(t)
	in := game.NewInputState()
	pw := g.Sprites.Get(game.SpritePlayer).Width

	in.Apply(game.ActionRight, true)
	for i := 0; i < 400; i++ {
		g.Step(in)
		if g.Player.X < 0 || g.Player.X > g.Width-pw {
			t.Fatalf("player x = %d out of range", g.Player.X)
		}
	}
	if g.Player.X != g.Width-pw {
		t.Errorf("player x = %d, want %d", g.Player.X, g.Width-pw)
	}

	in.Apply(game.ActionRight, false)
	in.Apply(game.ActionLeft, true)
	for i := 0; i < 400; i++ {
		g.Step(in)
	}
	if g.Player.X != 0 {
		t.Errorf("player x = %d, want 0", g.Player.X)
	}
}

func TestPlayerStep(t *testing.T) {
	g, _ := newTestGame(t)
	in := game.NewInputState()
	in.Apply(game.ActionLeft, true)
	in.Apply(game.ActionRight, true)
	g.Step(in)
	if g.Player.X != 295 {
		t.Errorf("opposite keys moved player to %d", g.Player.X)
	}
	in.Apply(game.ActionLeft, false)
	g.Step(in)
	if g.Player.X != 295+game.PlayerSpeed {
		t.Errorf("player x = %d, want %d", g.Player.X, 295+game.PlayerSpeed)
	}
}

func TestAlienDropFollowsWallClock(t *testing.T) {
	g, clock := newTestGame(t)
	in := game.NewInputState()
	buf := game.NewBuffer(g.Width, g.Height)
	fe := &fakeFrontend{}
	y0 := g.Aliens[0].Y

	tick := func() {
		t.Helper()
		if err := g.Tick(in, buf, fe); err != nil {
			t.Fatal(err)
		}
	}

	tick()
	// Many ticks inside the interval never drop.
	for i := 0; i < 100; i++ {
		clock.Advance(29 * time.Millisecond)
		tick()
	}
	if g.Aliens[0].Y != y0 {
		t.Fatalf("aliens dropped after %v", 2900*time.Millisecond)
	}

	clock.Advance(100 * time.Millisecond)
	tick()
	if g.Aliens[0].Y != y0-game.AlienDropStep {
		t.Fatalf("alien y = %d, want %d", g.Aliens[0].Y, y0-game.AlienDropStep)
	}

	// One long frame drops once, not once per missed interval.
	clock.Advance(10 * time.Second)
	tick()
	if g.Aliens[0].Y != y0-2*game.AlienDropStep {
		t.Errorf("alien y = %d after long frame", g.Aliens[0].Y)
	}
	if g.Stats.Drops != 2 {
		t.Errorf("drops = %d, want 2", g.Stats.Drops)
	}
}

func TestAlienDropMovesDeadAliens(t *testing.T) {
	g, clock := newTestGame(t)
	g.Aliens[0].Type = game.AlienDead
	g.Aliens[0].DeathCounter = 0
	y0 := g.Aliens[0].Y

	g.DropAliens(clock.Now())
	clock.Advance(game.AlienDropInterval)
	g.DropAliens(clock.Now())

	if g.Aliens[0].Y != y0-game.AlienDropStep {
		t.Errorf("dead alien y = %d, want %d", g.Aliens[0].Y, y0-game.AlienDropStep)
	}
}

func TestPresentErrorAbortsTick(t *testing.T) {
	g, _ := newTestGame(t)
	in := game.NewInputState()
	in.FirePressed = true
	errBoom := errors.New("boom")

	err := g.Tick(in, game.NewBuffer(g.Width, g.Height), &fakeFrontend{err: errBoom})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if g.Bullets.Len() != 0 || g.Animations[0].Elapsed != 0 || g.Stats.Ticks != 0 {
		t.Error("simulation advanced after failed present")
	}
}

func TestRunStopsWhenNotRunning(t *testing.T) {
	g, _ := newTestGame(t)
	fe := &fakeFrontend{stopAfter: 3}

	stats, err := game.Run(context.Background(), g, game.NewInputState(), fe)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Ticks != 3 || fe.presents != 3 {
		t.Errorf("ticks = %d, presents = %d, want 3", stats.Ticks, fe.presents)
	}
	if len(fe.lastPixels) != g.Width*g.Height {
		t.Errorf("presented %d pixels", len(fe.lastPixels))
	}
}

func TestRunHonoursContext(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := game.Run(ctx, g, game.NewInputState(), &fakeFrontend{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Ticks != 0 {
		t.Errorf("ticks = %d, want 0", stats.Ticks)
	}
}

func TestRunReturnsPresentError(t *testing.T) {
	g, _ := newTestGame(t)
	errBoom := errors.New("boom")
	_, err := game.Run(context.Background(), g, game.NewInputState(), &fakeFrontend{err: errBoom})
	if !errors.Is(err, errBoom) {
		t.Errorf("err = %v", err)
	}
}

func TestBulletCountInvariant(t *testing.T) {
	g, _ := newTestGame(t)
	in := game.NewInputState()
	for i := 0; i < 2000; i++ {
		in.FirePressed = true
		if i%3 == 0 {
			in.MoveDir = 1
		} else {
			in.MoveDir = -1
		}
		g.Step(in)
		if n := g.Bullets.Len(); n < 0 || n > game.MaxBullets {
			t.Fatalf("tick %d: %d bullets", i, n)
		}
	}
	for i := range g.Aliens {
		if a := g.Aliens[i]; !a.Alive() && a.DeathCounter < 0 {
			t.Fatalf("alien %d counter %d", i, a.DeathCounter)
		}
	}
}
