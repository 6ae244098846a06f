package game

import (
	"log"
	"math/rand"
	"time"

	"dropshot/internal/assets"
	"dropshot/internal/audio"
	"dropshot/internal/components"
	"dropshot/internal/config"
	"dropshot/internal/engine"
	"dropshot/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/quasilyte/gdata/v2"
)

const (
	physicsFixedDt     = 1.0 / 60.0
	physicsMaxSubsteps = 3

	tuningPath = "assets/config/tuning.yaml"
)

// Game wires the frame driver: it owns the window, steps physics, lifecycle
// and rendering in a fixed order, and feeds pointer input into the hit
// resolver. All state mutation happens on this loop.
type Game struct {
	tuning   *config.Tuning
	state    *State
	world    *world.World
	life     *Lifecycle
	resolver *HitResolver
	loader   *assets.Loader
	settings *SettingsManager
	hud      *HUD

	player     *engine.GameObject
	controller *components.PlayerController
	camera     *components.Camera

	paused bool
}

func New() *Game {
	tuning, err := config.LoadOrDefault(tuningPath)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	types, err := TypesFromConfig(tuning.TargetTypes)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	store, err := gdata.Open(gdata.Config{AppName: "dropshot"})
	if err != nil {
		log.Printf("game: settings storage unavailable: %v", err)
		store = nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := NewState(tuning, rng)
	w := world.New()
	life := NewLifecycle(state, w.Scene, w.Physics, tuning, types, nil)

	g := &Game{
		tuning:   tuning,
		state:    state,
		world:    w,
		life:     life,
		resolver: NewHitResolver(state, life),
		settings: NewSettingsManager(store),
	}
	g.hud = NewHUD(state)
	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "Dropshot")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.SetExitKey(rl.KeyNull) // Esc opens settings instead of quitting
	rl.DisableCursor()

	if g.settings.Settings().Fullscreen {
		rl.ToggleFullscreen()
	}

	audio.Init()
	defer audio.Close()
	audio.SetMasterVolume(float32(g.settings.Settings().SoundVolume))

	g.world.Initialize()
	defer g.world.Unload()

	g.loader = assets.NewLoader(g.soundManifest())
	g.loader.OnProgress = func(loaded, total int, path string) {
		log.Printf("assets: loaded %s (%d/%d)", path, loaded, total)
	}
	g.loader.OnError = func(path string, err error) {
		log.Printf("assets: %v", err)
	}
	g.loader.Ready.AddListener(func() {
		log.Printf("assets: all loaded, session ready")
	})

	g.createPlayer()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.life.RetireAll()
}

// soundManifest lists every sound the session needs: one per target type
// plus the shared miss sound. Duplicate keys across types load once.
func (g *Game) soundManifest() []assets.Item {
	items := []assets.Item{
		{Key: MissSoundKey, Kind: assets.KindSound, Path: "assets/sounds/miss.wav"},
	}
	seen := map[string]bool{MissSoundKey: true}
	for _, tt := range g.tuning.TargetTypes {
		if seen[tt.Sound] {
			continue
		}
		seen[tt.Sound] = true
		items = append(items, assets.Item{
			Key:  tt.Sound,
			Kind: assets.KindSound,
			Path: "assets/sounds/" + tt.Sound + ".wav",
		})
	}
	return items
}

func (g *Game) createPlayer() {
	g.player = engine.NewGameObject("Player")
	g.player.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: 8}

	g.controller = components.NewPlayerController()
	g.controller.LookSpeed = 0.1 * float32(g.settings.Settings().MouseSensitivity)
	g.player.AddComponent(g.controller)

	g.camera = components.NewCamera()
	g.player.AddComponent(g.camera)

	g.world.Scene.AddGameObject(g.player)
	g.player.Start()
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()
	ready := g.loader.IsReady()

	if rl.IsKeyPressed(rl.KeyEscape) {
		g.togglePause()
	}

	g.controller.Frozen = !ready || g.paused
	g.world.Update(deltaTime)

	if !ready {
		if g.loader.Err() == nil {
			g.loader.Step()
		}
		// Gameplay stays gated until every asset is in; the loading (or
		// error) screen still renders below.
		return
	}

	if !g.paused {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.shoot()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.restart()
		}
	}

	g.Tick(deltaTime)
	g.hud.Update(deltaTime)
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
		if err := g.settings.Save(); err != nil {
			log.Printf("game: %v", err)
		}
	}
}

// shoot feeds the crosshair position (screen center while the cursor is
// captured) into the hit pipeline.
func (g *Game) shoot() {
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())
	pointer := rl.Vector2{X: width / 2, Y: height / 2}
	if !rl.IsCursorHidden() {
		pointer = rl.GetMousePosition()
	}

	outcome := g.resolver.ShootAt(pointer, g.camera.GetRaylibCamera(), width, height)
	g.hud.NotifyShot(outcome)
}

func (g *Game) restart() {
	g.life.RetireAll()
	g.state.Reset(g.tuning)
	log.Printf("game: session restarted")
}

// Tick advances the simulation in fixed order: physics, spawn cadence, sync
// and prune, listener. Rendering happens afterwards in Draw, unconditionally.
func (g *Game) Tick(deltaTime float32) {
	if g.paused {
		return
	}

	g.world.Physics.Step(physicsFixedDt, deltaTime, physicsMaxSubsteps)
	g.life.Advance(deltaTime)
	g.life.SyncAndPrune()

	eye := g.player.Transform.Position
	eye.Y += g.controller.GetEyeHeight()
	audio.SetListener(eye, g.controller.GetLookDirection(), rl.Vector3{Y: 1})
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	camera := g.camera.GetRaylibCamera()
	rl.BeginMode3D(camera)
	g.world.Draw()
	rl.EndMode3D()

	if !g.loader.IsReady() {
		g.hud.DrawLoading(g.loader)
	} else {
		g.hud.Draw()
	}

	if g.paused {
		g.drawSettingsPanel()
	}

	rl.EndDrawing()
}
