/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core provides the simulation engine for SeproLang: a
// rule-based, discrete rewrite loop over a population of Objects.
//
// A Model declares Concepts (object templates) and Actuators
// (production rules). A World seeds an initial population. Engine.Run
// repeatedly evaluates every Actuator against the current Container of
// Objects; matching Objects are rewritten by a small, fixed set of
// Modifier actions. Traps, notifications, and a HALT flag let
// Actuators signal observers and stop the run.
//
// The primary types are Model, Container, and Engine. A Model arrives
// fully built and is then driven by an Engine, which owns exactly one
// Container for the run's lifetime.
//
// This package never parses text, writes files, or talks to a
// network. Those concerns belong to collaborator packages (dsl, cmd,
// viz, store, observe) that consume a *Model and the Delegate/Logger
// interfaces declared here.
package core
