package config

import "sort"

var Presets = map[string]map[string]*Config{
	EngineGravity: {
		"empty": {
			Engine: EngineGravity, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: DefaultDrawSize, Collision: CollisionBounce,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
		},
		"binary": {
			Engine: EngineGravity, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: DefaultDrawSize, Collision: CollisionBounce,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
			Particles: []ParticleSpec{
				{X: 120, Y: 120, Radius: 60},
				{X: 320, Y: 320, Radius: 60},
			},
		},
		"merge": {
			Engine: EngineGravity, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: DefaultDrawSize, Collision: CollisionMerge,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
			Particles: []ParticleSpec{
				{X: 120, Y: 120, Radius: 60},
				{X: 320, Y: 320, Radius: 60},
			},
		},
		"cluster": {
			Engine: EngineGravity, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: DefaultDrawSize, Collision: CollisionMerge,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
			Particles: []ParticleSpec{
				{X: 150, Y: 150, Radius: 20},
				{X: 250, Y: 150, Radius: 20},
				{X: 200, Y: 230, Radius: 20},
				{X: 200, Y: 180, VX: 0.001, Radius: 8},
			},
		},
	},
	EngineRigid: {
		"empty": {
			Engine: EngineRigid, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: 32, Collision: CollisionBounce,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
		},
		"pair": {
			Engine: EngineRigid, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: 32, Collision: CollisionBounce,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
			Bodies: []BodySpec{
				{X: 150, Y: 200, VX: 0.5, Size: 40, Mass: 10},
				{X: 300, Y: 200, VX: -0.5, Size: 40, Mass: 10},
			},
		},
		"stack": {
			Engine: EngineRigid, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale,
			DrawSize: 32, Collision: CollisionBounce,
			Gravity: GravConst, Damping: PhysicsResistance, Restitution: CollisionRestitution,
			Bodies: []BodySpec{
				{X: 200, Y: 150, Size: 48, Mass: 20},
				{X: 200, Y: 210, Size: 48, Mass: 20},
				{X: 200, Y: 270, Size: 48, Mass: 20},
			},
		},
	},
}

func GetPreset(engine, preset string) *Config {
	enginePresets, ok := Presets[engine]
	if !ok {
		return nil
	}
	cfg, ok := enginePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(engine string) []string {
	enginePresets, ok := Presets[engine]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(enginePresets))
	for name := range enginePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
