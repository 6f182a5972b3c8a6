package settings

// Dispatcher is the narrow command surface the preferences dialog needs
// from its host. Each call persists one setting; calls are independent and
// best-effort, a failed write never blocks later ones.
type Dispatcher interface {
	SetStatsOptOut(optOut bool) error
	SetConfirmRepositoryRemoval(confirm bool) error
	SetConfirmDiscardChanges(confirm bool) error
	SetConfirmForcePush(confirm bool) error
	SetExternalEditor(editor string) error
	SetShell(shell string) error
	SetUncommittedChangesStrategy(s Strategy) error
	SetTheme(theme string) error
	SetThemeAutoSwitch(auto bool) error
}

// FileDispatcher implements Dispatcher against the YAML settings file,
// rewriting the file after every change.
type FileDispatcher struct {
	path string
	cur  Settings
}

// NewFileDispatcher wraps the settings file at path, starting from the
// currently loaded values.
func NewFileDispatcher(path string, cur Settings) *FileDispatcher {
	return &FileDispatcher{path: path, cur: cur}
}

// Current returns the dispatcher's view of the settings.
func (d *FileDispatcher) Current() Settings { return d.cur }

func (d *FileDispatcher) commit() error { return Save(d.path, d.cur) }

func (d *FileDispatcher) SetStatsOptOut(optOut bool) error {
	d.cur.StatsOptOut = optOut
	return d.commit()
}

func (d *FileDispatcher) SetConfirmRepositoryRemoval(confirm bool) error {
	d.cur.ConfirmRepositoryRemoval = confirm
	return d.commit()
}

func (d *FileDispatcher) SetConfirmDiscardChanges(confirm bool) error {
	d.cur.ConfirmDiscardChanges = confirm
	return d.commit()
}

func (d *FileDispatcher) SetConfirmForcePush(confirm bool) error {
	d.cur.ConfirmForcePush = confirm
	return d.commit()
}

func (d *FileDispatcher) SetExternalEditor(editor string) error {
	d.cur.ExternalEditor = editor
	return d.commit()
}

func (d *FileDispatcher) SetShell(shell string) error {
	d.cur.Shell = shell
	return d.commit()
}

func (d *FileDispatcher) SetUncommittedChangesStrategy(s Strategy) error {
	d.cur.UncommittedChangesStrategy = s
	return d.commit()
}

func (d *FileDispatcher) SetTheme(theme string) error {
	d.cur.Theme = theme
	return d.commit()
}

func (d *FileDispatcher) SetThemeAutoSwitch(auto bool) error {
	d.cur.ThemeAutoSwitch = auto
	return d.commit()
}
