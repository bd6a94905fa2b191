// Package dataset holds the small in-memory dataset used by the demo
// command, and the summary statistics printed for it.
package dataset

import "time"

type Customer struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	City        string    `json:"city"`
	CreditLimit float64   `json:"credit_limit"`
	Orders      int       `json:"orders"`
	Since       time.Time `json:"since"`
}

func (c Customer) FullName() string { return c.FirstName + " " + c.LastName }

type Employee struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
	Years      int     `json:"years"`
}

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func Customers() []Customer {
	return []Customer{
		{1, "Ada", "Lovelace", "London", 12000, 14, date(2019, time.March, 4)},
		{2, "Grace", "Hopper", "Arlington", 8500, 9, date(2020, time.July, 21)},
		{3, "Alan", "Turing", "Manchester", 15000, 22, date(2018, time.January, 9)},
		{4, "Edsger", "Dijkstra", "Austin", 6000, 3, date(2022, time.May, 30)},
		{5, "Barbara", "Liskov", "Boston", 9500, 11, date(2021, time.October, 2)},
		{6, "Ken", "Thompson", "Berkeley", 11000, 17, date(2017, time.August, 15)},
		{7, "Rob", "Pike", "Sydney", 7250, 6, date(2023, time.February, 11)},
		{8, "Margaret", "Hamilton", "Boston", 13250, 19, date(2016, time.November, 27)},
	}
}

func Employees() []Employee {
	return []Employee{
		{1, "Linus", "Engineering", 142000, 8},
		{2, "Radia", "Engineering", 151000, 12},
		{3, "Frances", "Research", 128000, 6},
		{4, "John", "Sales", 87000, 3},
		{5, "Hedy", "Research", 133500, 9},
		{6, "Dennis", "Support", 71000, 2},
	}
}

// CreditLimits returns the credit limit column of customers.
func CreditLimits(customers []Customer) []float64 {
	out := make([]float64, len(customers))
	for i, c := range customers {
		out[i] = c.CreditLimit
	}
	return out
}

func OrderCounts(customers []Customer) []float64 {
	out := make([]float64, len(customers))
	for i, c := range customers {
		out[i] = float64(c.Orders)
	}
	return out
}

func Salaries(employees []Employee) []float64 {
	out := make([]float64, len(employees))
	for i, e := range employees {
		out[i] = e.Salary
	}
	return out
}
