package old

func Legacy() {}
