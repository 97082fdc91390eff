package config

// physicalKeys lists the key names both frontends can bind. They are ebiten's
// key names; the terminal frontend maps the same names onto tcell keys.
var physicalKeys = func() map[string]bool {
	names := map[string]bool{
		"Space":      true,
		"Enter":      true,
		"Tab":        true,
		"Backspace":  true,
		"ArrowUp":    true,
		"ArrowDown":  true,
		"ArrowLeft":  true,
		"ArrowRight": true,
	}
	for r := 'A'; r <= 'Z'; r++ {
		names[string(r)] = true
	}
	for r := '0'; r <= '9'; r++ {
		names["Digit"+string(r)] = true
	}
	return names
}()

// IsPhysicalKey reports whether name can be bound in a keys section.
func IsPhysicalKey(name string) bool {
	return physicalKeys[name]
}
