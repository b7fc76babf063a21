// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

_// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

1// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

0// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

0// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

0// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

0// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

[// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

]// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

[// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

]// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

j// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

N// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

N// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

<// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

0// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

&// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

j// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

J// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

-// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

[// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

]// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

[// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

]// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

0// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

_// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

I// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

N// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

1// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

U// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

q// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

T// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

1// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

<// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

+// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

+// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

C// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

M// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

W// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

B// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

z// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

B// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

R// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

;// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

&// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

&// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

I// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

N// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

*// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

F// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

V// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

A// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

B// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

A// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

D// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

v// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

H// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

B// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

+// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

S// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

&// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

&// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

B// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

%// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

"// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

P// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

/// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

w// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

d// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

y// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

m// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

k// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

c// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

g// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

b// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

{// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

_// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

:// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

L// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

p// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

a// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

h// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

	// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

u// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

=// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

n// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

l// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

|// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

|// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

!// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

I// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

(// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

e// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

,// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

 // UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

f// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

.// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

r// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

N// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

o// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

E// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

x// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

i// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

s// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

t// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

)// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

}// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}


// UniquePath returns the path for name if free, otherwise the first free
// "base (n).ext" with n counting up from 1.
func (s *LocalFileStorage) UniquePath(name string) (string, error) {
	return s.UniquePathExcluding(name, nil)
}

// UniquePathExcluding skips candidates present in reserved as well as those on disk.
// A dry run reserves the targets it has already planned.
func (s *LocalFileStorage) UniquePathExcluding(name string, reserved map[string]bool) (string, error) {
	taken := func(path string) bool {
		return reserved[path] || exists(path)
	}

	candidate := s.Path(name)
	if !taken(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= s.maxProbe; i++ {
		candidate = s.Path(fmt.Sprintf("%s (%d)%s", base, i, ext))
		if !taken(candidate) {
			s.logger.Debug("Resolved name collision",
				zap.String("name", name),
				zap.String("path", candidate))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrCollisionExhausted, name, s.maxProbe)
}

