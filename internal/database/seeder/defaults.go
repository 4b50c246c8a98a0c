package seeder

func Defaults(source SkillSource) []Seeder {
	return []Seeder{
		SkillsSeeder{Source: source},
	}
}
