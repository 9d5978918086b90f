package interp

// NewDefaultRegistry builds the full command catalog.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.Register(newAudioCommand())
	registry.Register(setAudioCommand())
	registry.Register(rmAudioCommand())

	registry.Register(newElementCommand())
	registry.Register(newTextCommand())
	registry.Register(setElementCommand())
	registry.Register(rmElementCommand())

	registry.Register(newPageCommand())
	registry.Register(setPageCommand())
	registry.Register(rmPageCommand())

	registry.Register(newNoteCommand())
	registry.Register(setNoteCommand())
	registry.Register(rmNoteCommand())
	registry.Register(lsNotesCommand())

	registry.Register(lsCompCommand())
	registry.Register(lsFilesCommand())
	registry.Register(helpCommand(registry))

	return registry
}
