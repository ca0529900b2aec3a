package inventory

import "time"

// SetClock fija el reloj de los casos de uso en tests.
func (uc *CreateProductUseCase) SetClock(now func() time.Time) { uc.now = now }

// SetClock fija el reloj de los casos de uso en tests.
func (uc *RegisterChangeUseCase) SetClock(now func() time.Time) { uc.now = now }
