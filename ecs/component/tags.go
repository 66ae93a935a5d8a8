package component

// PinnedTag marks a body that never integrates or collides but still pulls
// on other bodies when mutual gravity is on (the sandbox "black hole").
type PinnedTag struct{}

var PinnedTagComponent = NewComponent[PinnedTag]()

// SettingsTag marks the single entity that carries the world Settings.
type SettingsTag struct{}

var SettingsTagComponent = NewComponent[SettingsTag]()
