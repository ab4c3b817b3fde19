package domain

// Customer - клиент агентства проката
// Баланс растет при списаниях и уменьшается только при оплате
type Customer struct {
	ID                string  `json:"id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone,omitempty"`
	LicenseNumber     string  `json:"license_number"`
	Age               int     `json:"age"`
	MotorcycleLicense bool    `json:"motorcycle_license"`
	CreditLimit       float64 `json:"credit_limit"`
	Balance           float64 `json:"balance"`
}

// FullName возвращает полное имя клиента
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validate проверяет корректность данных клиента
func (c *Customer) Validate() error {
	if c.FirstName == "" || c.LastName == "" {
		return ErrInvalidCustomerData
	}
	if c.Age <= 0 {
		return ErrInvalidCustomerData
	}
	if c.CreditLimit < 0 {
		return ErrInvalidCustomerData
	}
	return nil
}

// CanRent проверяет право клиента на аренду транспортного средства.
// Проверки выполняются по порядку и прерываются на первой неудаче:
// возраст, затем мотоциклетная лицензия, затем кредитный лимит
func (c *Customer) CanRent(vehicle *Vehicle, quotedCost float64) error {
	if c.Age < 18 {
		return &EligibilityError{Reason: ReasonUnderage}
	}
	if vehicle.RequiresSpecialLicense() && !c.MotorcycleLicense {
		return &EligibilityError{Reason: ReasonNoLicense}
	}
	if c.Balance+quotedCost > c.CreditLimit {
		return &EligibilityError{Reason: ReasonCreditLimit}
	}
	return nil
}

// Charge списывает сумму на баланс клиента
// Штраф за просрочку списывается без проверки кредитного лимита
func (c *Customer) Charge(amount float64) {
	if amount > 0 {
		c.Balance += amount
	}
}

// Pay принимает оплату от клиента и уменьшает баланс
func (c *Customer) Pay(amount float64) error {
	if amount <= 0 || amount > c.Balance {
		return ErrInvalidPayment
	}
	c.Balance -= amount
	return nil
}
