package component

// Settings holds the global simulation parameters. One entity carries it;
// systems read it with World.First. Settings survive a simulation reset.
type Settings struct {
	// Width and Height bound the simulation area; bodies stay inside
	// [radius, bound-radius] on each axis.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// GravityY is added to every free body's vertical velocity each tick.
	GravityY float64 `yaml:"gravity_y"`
	// G scales both body-body gravity and force points.
	G float64 `yaml:"g"`
	// Restitution is the fraction of speed kept after a wall bounce and the
	// impulse scale for body-body collisions, in [0, 1].
	Restitution float64 `yaml:"restitution"`
	// TrailDecay is the alpha used to fade the previous frame. Rendering only.
	TrailDecay float64 `yaml:"trail_decay"`
	// MassFactor derives body mass from radius: m = MassFactor * r^2.
	MassFactor float64 `yaml:"mass_factor"`

	MutualGravity      bool `yaml:"mutual_gravity"`
	ParticleCollisions bool `yaml:"particle_collisions"`
	Effects            bool `yaml:"effects"`

	// SparkThreshold is the impact speed above which sparks are emitted.
	SparkThreshold float64 `yaml:"spark_threshold"`
	SparkCount     int     `yaml:"spark_count"`
}

var SettingsComponent = NewComponent[Settings]()
