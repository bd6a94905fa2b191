package broken

func Good() int { return 1 }

var Broken = missing()

type Fine struct{ Value int }
