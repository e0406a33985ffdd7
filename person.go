package main

import "fmt"

type Person struct {
	Name string `yaml:"name"`
	Age  uint32 `yaml:"age"`
}

func NewPerson(name string, age uint32) Person {
	return Person{Name: name, Age: age}
}

func (p Person) Greet() string {
	return fmt.Sprintf("Hello, my name is %s and I'm %d years old!", p.Name, p.Age)
}
